package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/centralbjl/directory/internal/validate"
	"github.com/centralbjl/directory/pkg/models"
)

func TestNew_CompilesAllKinds(t *testing.T) {
	if _, err := validate.New(); err != nil {
		t.Fatalf("New returned error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    models.ListingKind
		payload string
		wantOK  bool
	}{
		{
			name:    "company valid",
			kind:    models.KindCompany,
			payload: `{"name":"Padaria Central","category":"Alimentação","address":"Rua Principal, 10"}`,
			wantOK:  true,
		},
		{
			name:    "company missing category",
			kind:    models.KindCompany,
			payload: `{"name":"Padaria Central","address":"Rua Principal, 10"}`,
			wantOK:  false,
		},
		{
			name:    "company name too short",
			kind:    models.KindCompany,
			payload: `{"name":"P","category":"Alimentação","address":"Rua Principal, 10"}`,
			wantOK:  false,
		},
		{
			name:    "job valid",
			kind:    models.KindJob,
			payload: `{"title":"Vendedor","company_name":"Loja X","description":"Atendimento ao cliente"}`,
			wantOK:  true,
		},
		{
			name:    "job missing description",
			kind:    models.KindJob,
			payload: `{"title":"Vendedor","company_name":"Loja X"}`,
			wantOK:  false,
		},
		{
			name:    "travel package negative price",
			kind:    models.KindTravelPackage,
			payload: `{"destination":"Gramado","agency":"Viagens BJL","price":-10}`,
			wantOK:  false,
		},
		{
			name:    "event valid",
			kind:    models.KindEvent,
			payload: `{"name":"Festa Junina","location":"Praça Central","event_date":"2026-06-24","is_free":true}`,
			wantOK:  true,
		},
		{
			name:    "food wrong type for delivery",
			kind:    models.KindFood,
			payload: `{"name":"Pizzaria Y","category":"Pizzaria","address":"Av. Brasil, 5","delivery":"yes"}`,
			wantOK:  false,
		},
		{
			name:    "malformed JSON",
			kind:    models.KindCompany,
			payload: `{"name":`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.kind, []byte(tt.payload))
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK {
				var ve *models.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if len(ve.Fields) == 0 {
					t.Fatalf("validation error without field details")
				}
			}
		})
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := v.Validate(context.Background(), models.ListingKind("gadget"), []byte(`{}`)); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
