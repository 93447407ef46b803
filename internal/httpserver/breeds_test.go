package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"guppyreal/internal/domain"
	catalogsvc "guppyreal/internal/service/catalog"
	"github.com/shopspring/decimal"
)

func TestListBreeds(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/breeds", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	breeds := decodeBody[[]domain.Breed](t, rec)
	if len(breeds) != 2 {
		t.Fatalf("expected 2 breeds, got %d", len(breeds))
	}
}

func TestListBreedsEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.breeds = nil
	rec := env.do(t, http.MethodGet, "/breeds", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Fatalf("expected a JSON array, got %s", rec.Body.String())
	}
}

func TestCreateBreed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/breeds", testToken, catalogsvc.BreedInput{
		Name:          "Red Dragon",
		PricePerPiece: decimal.NewFromInt(120),
		PricePerPair:  decimal.NewFromInt(220),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	b := decodeBody[domain.Breed](t, rec)
	if b.ID == "" || b.Name != "Red Dragon" {
		t.Fatalf("unexpected breed: %+v", b)
	}
}

func TestCreateBreedDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/breeds", testToken, catalogsvc.BreedInput{
		Name:          "Full Gold",
		PricePerPiece: decimal.NewFromInt(100),
		PricePerPair:  decimal.NewFromInt(180),
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUpdateBreed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/breeds/breed-1", testToken, catalogsvc.BreedInput{
		Name:          "Full Gold Platinum",
		PricePerPiece: decimal.NewFromInt(130),
		PricePerPair:  decimal.NewFromInt(240),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	b := decodeBody[domain.Breed](t, rec)
	if b.Name != "Full Gold Platinum" || !b.PricePerPiece.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("unexpected breed: %+v", b)
	}
}

func TestUpdateBreedNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/breeds/missing", testToken, catalogsvc.BreedInput{
		Name:          "Ghost",
		PricePerPiece: decimal.NewFromInt(1),
		PricePerPair:  decimal.NewFromInt(2),
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteBreed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodDelete, "/breeds/breed-1", testToken, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = env.do(t, http.MethodDelete, "/breeds/breed-1", testToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestGetSettings(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/settings", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	s := decodeBody[domain.Settings](t, rec)
	if s.BankName != "กสิกรไทย" || !s.ShippingFee.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSaveSettings(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/settings", testToken, domain.Settings{
		ID:            "settings-1",
		BankName:      "ไทยพาณิชย์",
		AccountNumber: "987-6-54321-0",
		AccountName:   "เจมส์ Guppy",
		ShippingFee:   decimal.NewFromInt(80),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	s := decodeBody[domain.Settings](t, rec)
	if s.BankName != "ไทยพาณิชย์" || !s.ShippingFee.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSaveSettingsStaleID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/settings", testToken, domain.Settings{
		ID:          "settings-gone",
		BankName:    "กสิกรไทย",
		ShippingFee: decimal.NewFromInt(60),
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for stale settings id, got %d", rec.Code)
	}
}

func TestSaveSettingsNegativeFee(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/settings", testToken, domain.Settings{ShippingFee: decimal.NewFromInt(-10)})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
