package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// Extractor selects a payload out of a backend response envelope.
type Extractor struct {
	expr   string
	search func(any) (any, error)
}

// NewExtractor compiles a JMESPath expression.
func NewExtractor(expr string) (*Extractor, error) {
	q, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	return &Extractor{expr: expr, search: q.Search}, nil
}

func mustExtractor(expr string) *Extractor {
	e, err := NewExtractor(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Envelope paths used by the backend.
var (
	atLoginData     = mustExtractor("data.data")
	atData          = mustExtractor("data")
	atMessage       = mustExtractor("message || error.message || error")
	atOrders        = mustExtractor("orders")
	atOrderDetails  = mustExtractor("orderDetails")
	atShipment      = mustExtractor("shiprocketOrderResponse")
	atInvoiceURL    = mustExtractor("invoice_url")
	atLabelURL      = mustExtractor("label_url")
	atTracking      = mustExtractor("tracking_data")
	atProducts      = mustExtractor("products")
	atCoupons       = mustExtractor("coupons")
	atStoreNames    = mustExtractor("StoreNameAndIds")
	atAssigned      = mustExtractor("assignedInventories")
	atBills         = mustExtractor("Bills")
	atResult        = mustExtractor("result")
	atDeletedBills  = mustExtractor("deletedBills")
	atRaisedRequest = mustExtractor("raisedInventoryReqs")
)

// String returns the source expression.
func (e *Extractor) String() string {
	if e == nil {
		return "@"
	}
	return e.expr
}

// Decode selects the payload from body and unmarshals it into out. A nil
// Extractor decodes the whole body. A missing payload leaves out untouched.
func (e *Extractor) Decode(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if e == nil {
		return json.Unmarshal(body, out)
	}
	doc, err := parseDocument(body)
	if err != nil {
		return err
	}
	found, err := e.search(doc)
	if err != nil {
		return fmt.Errorf("search %q: %w", e.expr, err)
	}
	if found == nil {
		return nil
	}
	raw, err := json.Marshal(found)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func parseDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}

// messageOf returns the message carried by a response envelope, if any.
func messageOf(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	doc, err := parseDocument(body)
	if err != nil {
		// Plain-text error bodies are shown as-is when short.
		txt := strings.TrimSpace(string(body))
		if len(txt) > 0 && len(txt) <= 200 && !strings.HasPrefix(txt, "<") {
			return txt
		}
		return ""
	}
	found, err := atMessage.search(doc)
	if err != nil {
		return ""
	}
	msg, _ := found.(string)
	return strings.TrimSpace(msg)
}
