package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"golang.org/x/sync/errgroup"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// PassService resolves the caller's active subscription pass from the pass
// API. A pass is only ever a pricing input, so every failure here degrades to
// "no active pass" rather than blocking checkout.
type PassService struct {
	Config config.Config
}

// ActivePass returns the caller's active pass, if any. The check and fetch
// endpoints are independent, so both are queried concurrently.
func (service *PassService) ActivePass(req *http.Request) (*models.ActivePassRest, bool) {
	var hasPass bool
	var activePass *models.ActivePassRest

	g, ctx := errgroup.WithContext(req.Context())
	g.Go(func() error {
		var err error
		hasPass, err = service.checkActivePass(ctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		activePass, err = service.getActivePass(ctx, req)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ErrorR(req, fmt.Errorf("error resolving active pass, continuing without one: [%v]", err))
		return nil, false
	}

	if !hasPass || activePass == nil {
		return nil, false
	}

	return activePass, true
}

func (service *PassService) checkActivePass(ctx context.Context, req *http.Request) (bool, error) {
	checkReq, err := http.NewRequestWithContext(ctx, "GET", service.Config.ShuttleAPIURL+"/api/passes/check", nil)
	if err != nil {
		return false, fmt.Errorf("failed to create pass check request: [%v]", err)
	}
	checkReq.Header.Set("Authorization", req.Header.Get("Authorization"))

	resp, err := http.DefaultClient.Do(checkReq)
	if err != nil {
		return false, fmt.Errorf("error checking active pass: [%v]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("error status [%v] back from pass check", resp.StatusCode)
	}

	var hasPass bool
	err = json.NewDecoder(resp.Body).Decode(&hasPass)
	if err != nil {
		return false, fmt.Errorf("error reading pass check response: [%v]", err)
	}

	return hasPass, nil
}

func (service *PassService) getActivePass(ctx context.Context, req *http.Request) (*models.ActivePassRest, error) {
	passReq, err := http.NewRequestWithContext(ctx, "GET", service.Config.ShuttleAPIURL+"/api/passes/active", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create active pass request: [%v]", err)
	}
	passReq.Header.Set("Authorization", req.Header.Get("Authorization"))

	resp, err := http.DefaultClient.Do(passReq)
	if err != nil {
		return nil, fmt.Errorf("error getting active pass: [%v]", err)
	}
	defer resp.Body.Close()

	// No active pass is a legitimate answer, not an error
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from active pass", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading active pass response: [%v]", err)
	}

	activePass := &models.ActivePassRest{}
	err = json.Unmarshal(body, activePass)
	if err != nil {
		return nil, fmt.Errorf("error reading active pass response: [%v]", err)
	}

	return activePass, nil
}
