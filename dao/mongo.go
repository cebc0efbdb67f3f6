package dao

import (
	"context"
	"time"

	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its
	// work without a connection.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. The crash requirement
	// above also applies here.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(err)
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver.
type MongoService struct {
	db                           MongoDatabaseInterface
	SelectionCollectionName      string
	PendingPaymentCollectionName string
}

// NewDAOService creates a new instance of the MongoService
func NewDAOService(cfg *config.Config) *MongoService {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                           database,
		SelectionCollectionName:      cfg.SelectionCollection,
		PendingPaymentCollectionName: cfg.PendingPaymentCollection,
	}
}

// GetSelection gets the in-progress booking selection for a session.
// If no selection is found, return nil.
func (m *MongoService) GetSelection(sessionID string) (*models.SelectionDB, error) {
	var resource models.SelectionDB

	collection := m.db.Collection(m.SelectionCollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": sessionID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// PutSelection writes the booking selection for a session, replacing any
// previous one so a session only ever holds a single in-flight selection.
func (m *MongoService) PutSelection(selection *models.SelectionDB) error {
	collection := m.db.Collection(m.SelectionCollectionName)
	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": selection.ID}, selection, opts)
	return err
}

// ClearSelection removes the booking selection for a session
func (m *MongoService) ClearSelection(sessionID string) error {
	collection := m.db.Collection(m.SelectionCollectionName)
	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": sessionID})
	return err
}

// CreatePendingPayment writes a new pending payment keyed by its order id.
// Any earlier pending payment for the same session is removed first - the
// hand-off record is a depth-1 queue per session, never a merge.
func (m *MongoService) CreatePendingPayment(pendingPayment *models.PendingPaymentDB) error {
	collection := m.db.Collection(m.PendingPaymentCollectionName)

	_, err := collection.DeleteMany(context.Background(), bson.M{"session_id": pendingPayment.SessionID})
	if err != nil {
		return err
	}

	_, err = collection.InsertOne(context.Background(), pendingPayment)
	return err
}

// GetPendingPayment gets a pending payment by order id.
// If no pending payment is found, return nil.
func (m *MongoService) GetPendingPayment(orderID string) (*models.PendingPaymentDB, error) {
	var resource models.PendingPaymentDB

	collection := m.db.Collection(m.PendingPaymentCollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": orderID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// UpdatePendingPaymentStatus patches the status of a pending payment
func (m *MongoService) UpdatePendingPaymentStatus(orderID string, status string) error {
	collection := m.db.Collection(m.PendingPaymentCollectionName)
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := collection.UpdateByID(context.Background(), orderID, update)
	return err
}

// DeletePendingPayment removes a reconciled pending payment so a stale or
// duplicate callback cannot replay it
func (m *MongoService) DeletePendingPayment(orderID string) error {
	collection := m.db.Collection(m.PendingPaymentCollectionName)
	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": orderID})
	return err
}

// DeletePendingPaymentsForSession removes all pending payments for a session
func (m *MongoService) DeletePendingPaymentsForSession(sessionID string) error {
	collection := m.db.Collection(m.PendingPaymentCollectionName)
	_, err := collection.DeleteMany(context.Background(), bson.M{"session_id": sessionID})
	return err
}
