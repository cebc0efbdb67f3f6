package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// ProducerTopic is the topic to which the reservation confirmed kafka message is sent
const ProducerTopic = "reservation-confirmed"

// ProducerSchemaName is the schema which will be used to send the reservation confirmed kafka message with
const ProducerSchemaName = "reservation-confirmed"

// reservationConfirmed represents the avro schema for the reservation confirmed message
type reservationConfirmed struct {
	OrderID string `avro:"order_id"`
}

// redirectUser redirects user to the provided redirect_uri with query params
func redirectUser(w http.ResponseWriter, r *http.Request, redirectURI string, params models.RedirectParams) {
	req, err := http.NewRequest("GET", redirectURI, nil)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error redirecting user: [%s]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	query := req.URL.Query()
	query.Add("status", params.Status)
	if params.Message != "" {
		query.Add("message", params.Message)
	}
	if params.OrderID != "" {
		query.Add("order_id", params.OrderID)
	}
	if params.ReservationNumber != "" {
		query.Add("reservation_number", params.ReservationNumber)
	}
	if len(params.Actions) > 0 {
		query.Add("actions", strings.Join(params.Actions, ","))
	}

	generatedURL := fmt.Sprintf("%s?%s", redirectURI, query.Encode())
	log.InfoR(r, "Redirecting to:", log.Data{"generated_url": generatedURL})

	http.Redirect(w, r, generatedURL, http.StatusSeeOther)
}

// produceReservationMessage handles creating a producer, marshalling the order id into the correct avro schema and
// sending the message to the topic defined in ProducerTopic
func produceReservationMessage(orderID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	reservationConfirmedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: reservationConfirmedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(orderID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceReservationMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(orderID string, reservationConfirmedSchema avro.Schema) (*producer.Message, error) {
	reservationConfirmedMessage := reservationConfirmed{OrderID: orderID}

	messageBytes, err := reservationConfirmedSchema.Marshal(reservationConfirmedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling reservation confirmed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
