package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// ReservationsClient calls the external reservation API. Reservation creation
// is idempotent server-side on the order id; the lookup by order id lets the
// reconciliation handler detect an already-created reservation before
// re-confirming a charge.
type ReservationsClient struct {
	Config config.Config
}

// CreateReservation creates a reservation from a draft. On the paid path the
// request carries the payment key, order id and amount.
func (c *ReservationsClient) CreateReservation(req *http.Request, createRequest models.CreateReservationRequest) (*models.ReservationRest, ResponseType, error) {
	requestBody, err := json.Marshal(createRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error marshalling reservation request: [%v]", err)
	}

	reservationReq, err := http.NewRequest("POST", c.Config.ShuttleAPIURL+"/api/reservations", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, Error, fmt.Errorf("failed to create reservation request: [%v]", err)
	}
	reservationReq.Header.Set("Authorization", req.Header.Get("Authorization"))
	reservationReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(reservationReq)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating reservation: [%v]", err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading reservation response: [%v]", err)
	}

	reservationResponse := &models.ReservationAPIResponse{}
	err = json.Unmarshal(body, reservationResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading reservation response: [%v]", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
			return nil, InvalidData, fmt.Errorf("error status [%v] back from reservation API: [%s]", resp.StatusCode, reservationResponse.Message)
		}
		return nil, Error, fmt.Errorf("error status [%v] back from reservation API: [%s]", resp.StatusCode, reservationResponse.Message)
	}

	if reservationResponse.Data == nil {
		return nil, Error, fmt.Errorf("no reservation returned from reservation API")
	}

	return reservationResponse.Data, Success, nil
}

// GetReservationByOrderID looks up a reservation previously created for an
// order id. If none exists, return nil.
func (c *ReservationsClient) GetReservationByOrderID(req *http.Request, orderID string) (*models.ReservationRest, ResponseType, error) {
	lookupReq, err := http.NewRequest("GET", c.Config.ShuttleAPIURL+"/api/reservations/order/"+orderID, nil)
	if err != nil {
		return nil, Error, fmt.Errorf("failed to create reservation lookup request: [%v]", err)
	}
	lookupReq.Header.Set("Authorization", req.Header.Get("Authorization"))

	resp, err := http.DefaultClient.Do(lookupReq)
	if err != nil {
		return nil, Error, fmt.Errorf("error looking up reservation by order id: [%v]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NotFound, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Error, fmt.Errorf("error status [%v] back from reservation lookup", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading reservation lookup response: [%v]", err)
	}

	reservationResponse := &models.ReservationAPIResponse{}
	err = json.Unmarshal(body, reservationResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading reservation lookup response: [%v]", err)
	}

	return reservationResponse.Data, Success, nil
}
