package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/dao"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// BookingService contains the DAO for db access
type BookingService struct {
	DAO    dao.DAO
	Config config.Config
}

// PutSelection writes the route and travel date for a session. Choosing a
// different route resets any payment method defaults, since they were chosen
// against pass state that may no longer apply.
func (service *BookingService) PutSelection(sessionID string, putRequest models.PutSelectionRequest) (*models.SelectionRest, ResponseType, error) {
	existing, err := service.DAO.GetSelection(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting selection from db: [%v]", err)
	}

	selection := &models.SelectionDB{
		ID:         sessionID,
		RouteID:    putRequest.RouteID,
		TravelDate: putRequest.TravelDate,
		Status:     Selecting.String(),
		CreatedAt:  time.Now().Truncate(time.Millisecond),
	}

	if existing != nil {
		selection.CreatedAt = existing.CreatedAt
		selection.UpdatedAt = time.Now().Truncate(time.Millisecond)
		if existing.RouteID == putRequest.RouteID {
			selection.PaymentMethod = existing.PaymentMethod
			selection.Provider = existing.Provider
		}
	}

	err = service.DAO.PutSelection(selection)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing selection to db: [%v]", err)
	}

	return selectionRest(selection), Success, nil
}

// PatchSelection sets the payment method and provider on an existing
// selection
func (service *BookingService) PatchSelection(sessionID string, patchRequest models.PatchSelectionRequest) (*models.SelectionRest, ResponseType, error) {
	selection, err := service.DAO.GetSelection(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting selection from db: [%v]", err)
	}
	if selection == nil {
		return nil, IncompleteSelection, fmt.Errorf("no selection found for session, route and travel date must be chosen first")
	}

	if patchRequest.PaymentMethod != "" {
		if !models.PaymentMethod(patchRequest.PaymentMethod).Valid() {
			return nil, InvalidData, fmt.Errorf("payment method [%s] not recognised", patchRequest.PaymentMethod)
		}
		selection.PaymentMethod = patchRequest.PaymentMethod
	}
	if patchRequest.Provider != "" {
		if !models.PaymentProvider(patchRequest.Provider).Valid() {
			return nil, InvalidData, fmt.Errorf("payment provider [%s] not recognised", patchRequest.Provider)
		}
		selection.Provider = patchRequest.Provider
	}
	selection.UpdatedAt = time.Now().Truncate(time.Millisecond)

	err = service.DAO.PutSelection(selection)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing selection to db: [%v]", err)
	}

	return selectionRest(selection), Success, nil
}

// GetSelection retrieves the in-progress selection for a session
func (service *BookingService) GetSelection(sessionID string) (*models.SelectionRest, ResponseType, error) {
	selection, err := service.DAO.GetSelection(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting selection from db: [%v]", err)
	}
	if selection == nil {
		return nil, NotFound, fmt.Errorf("selection not found for session")
	}

	return selectionRest(selection), Success, nil
}

// ResetSelection removes the selection and any pending payment for a session.
// Used when the user explicitly abandons the flow.
func (service *BookingService) ResetSelection(sessionID string) (ResponseType, error) {
	err := service.DAO.ClearSelection(sessionID)
	if err != nil {
		return Error, fmt.Errorf("error clearing selection: [%v]", err)
	}

	err = service.DAO.DeletePendingPaymentsForSession(sessionID)
	if err != nil {
		return Error, fmt.Errorf("error clearing pending payments: [%v]", err)
	}

	return Success, nil
}

// IsExpired checks whether a pending payment has outlived the configured
// reconciliation window
func IsExpired(pendingPayment *models.PendingPaymentDB, cfg *config.Config) (bool, error) {
	expiryTimeInMinutes, err := strconv.Atoi(cfg.ExpiryTimeInMinutes)
	if err != nil {
		return false, err
	}

	expiryTime := pendingPayment.CreatedAt.Add(time.Minute * time.Duration(expiryTimeInMinutes))
	return time.Now().After(expiryTime), nil
}

func selectionRest(selection *models.SelectionDB) *models.SelectionRest {
	return &models.SelectionRest{
		RouteID:       selection.RouteID,
		TravelDate:    selection.TravelDate,
		PaymentMethod: selection.PaymentMethod,
		Provider:      selection.Provider,
		Status:        selection.Status,
		CreatedAt:     selection.CreatedAt,
	}
}
