package dao

import "github.com/medishuttle/bookings.api.medishuttle.kr/models"

// DAO is an interface for accessing booking data from a backend store
type DAO interface {
	GetSelection(sessionID string) (*models.SelectionDB, error)
	PutSelection(selection *models.SelectionDB) error
	ClearSelection(sessionID string) error
	CreatePendingPayment(pendingPayment *models.PendingPaymentDB) error
	GetPendingPayment(orderID string) (*models.PendingPaymentDB, error)
	UpdatePendingPaymentStatus(orderID string, status string) error
	DeletePendingPayment(orderID string) error
	DeletePendingPaymentsForSession(sessionID string) error
}
