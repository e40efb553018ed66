package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeForm struct {
	StoreName string `form:"storeName" validate:"required,max=10"`
	Pincode   string `form:"pincode"   validate:"required,numeric,len=6"`
	EmailID   string `form:"emailID"   validate:"required,email"`
	Skipped   string `form:"-"`
}

type priceForm struct {
	NewPrice decimal.Decimal `form:"newPrice" validate:"gt=0"`
}

func TestStructReportsFormFieldNames(t *testing.T) {
	v := New()

	errs := v.Struct(storeForm{StoreName: "A very long name", Pincode: "12ab", EmailID: "nope"}, nil)

	require.Len(t, errs, 3)
	assert.Equal(t, "Store name cannot exceed 10 characters.", errs["storeName"])
	assert.Equal(t, "Pincode must contain digits only.", errs["pincode"])
	assert.Equal(t, "Enter a valid email address.", errs["emailID"])
}

func TestStructValid(t *testing.T) {
	errs := New().Struct(storeForm{StoreName: "Andheri", Pincode: "400053", EmailID: "a@b.in"}, nil)
	assert.Nil(t, errs)
}

func TestMessagesOverride(t *testing.T) {
	errs := New().Struct(storeForm{Pincode: "400053", EmailID: "a@b.in"}, Messages{
		"storeName.required": "Give the store a name.",
	})
	assert.Equal(t, map[string]string{"storeName": "Give the store a name."}, errs)
}

func TestDecimalComparedNumerically(t *testing.T) {
	v := New()
	assert.Contains(t, v.Struct(priceForm{NewPrice: decimal.Zero}, nil), "newPrice")
	assert.Nil(t, v.Struct(priceForm{NewPrice: decimal.RequireFromString("10.5")}, nil))
}

func TestField(t *testing.T) {
	v := New()
	msgs := Messages{"note": "Please enter a note before submitting."}

	assert.Equal(t, map[string]string{"note": "Please enter a note before submitting."},
		v.Field("note", "", "required", msgs))
	assert.Nil(t, v.Field("note", "looks fine", "required", msgs))
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"storeName":            "Store name",
		"commissionPercentage": "Commission percentage",
		"emailID":              "Email ID",
		"pincode":              "Pincode",
		"ID":                   "ID",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}
