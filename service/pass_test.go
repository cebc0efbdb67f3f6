package service

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
)

func passTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.ShuttleAPIURL = "https://shuttle-api.medishuttle.kr"
	return cfg
}

func TestUnitActivePass(t *testing.T) {
	cfg := passTestConfig()
	req, _ := http.NewRequest("POST", "/bookings/checkout", nil)
	req.Header.Set("Authorization", "Bearer token123")

	Convey("Active pass is resolved", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/check",
			httpmock.NewStringResponder(http.StatusOK, "true"))
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/active",
			httpmock.NewStringResponder(http.StatusOK, `{"id":31,"passType":"monthly","status":"active","valid":true}`))

		passService := &PassService{Config: *cfg}

		activePass, hasPass := passService.ActivePass(req)

		So(hasPass, ShouldBeTrue)
		So(activePass.PassType, ShouldEqual, "monthly")
	})

	Convey("No active pass is a legitimate answer", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/check",
			httpmock.NewStringResponder(http.StatusOK, "false"))
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/active",
			httpmock.NewStringResponder(http.StatusNotFound, ""))

		passService := &PassService{Config: *cfg}

		activePass, hasPass := passService.ActivePass(req)

		So(hasPass, ShouldBeFalse)
		So(activePass, ShouldBeNil)
	})

	Convey("Pass API failure degrades to no pass", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/check",
			httpmock.NewStringResponder(http.StatusInternalServerError, ""))
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/active",
			httpmock.NewStringResponder(http.StatusOK, `{"id":31,"passType":"monthly"}`))

		passService := &PassService{Config: *cfg}

		activePass, hasPass := passService.ActivePass(req)

		So(hasPass, ShouldBeFalse)
		So(activePass, ShouldBeNil)
	})

	Convey("Inconsistent answers degrade to no pass", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/check",
			httpmock.NewStringResponder(http.StatusOK, "true"))
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/passes/active",
			httpmock.NewStringResponder(http.StatusNotFound, ""))

		passService := &PassService{Config: *cfg}

		activePass, hasPass := passService.ActivePass(req)

		So(hasPass, ShouldBeFalse)
		So(activePass, ShouldBeNil)
	})
}
