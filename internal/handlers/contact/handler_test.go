package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"daawat/config"
	"daawat/infras/otel/mocks"
	"daawat/internal/handlers/contact"
)

func TestGetContactLinks(t *testing.T) {
	cfg := &config.Config{}
	cfg.Restaurant.Phone = "+919810635268"
	cfg.Restaurant.Email = "reservations@daawatekuldeep.in"
	cfg.Restaurant.WhatsAppNumber = "919810635268"
	cfg.Restaurant.WhatsAppMessage = "Hello! I would like to inquire about..."
	cfg.Restaurant.InstagramHandle = "daawat_e_kuldeep"

	handler := contact.New(cfg, mocks.NewOtel())

	request := httptest.NewRequest(http.MethodGet, "/v1/contact", nil)
	recorder := httptest.NewRecorder()

	handler.GetContactLinks(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data contact.ContactLinksResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "tel:+919810635268", body.Data.Phone)
	assert.Equal(t, "mailto:reservations@daawatekuldeep.in", body.Data.Email)
	assert.Equal(t, "https://wa.me/919810635268?text=Hello%21+I+would+like+to+inquire+about...", body.Data.WhatsApp)
	assert.Equal(t, "https://instagram.com/daawat_e_kuldeep", body.Data.Instagram)
}
