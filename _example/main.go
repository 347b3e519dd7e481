// Command example demonstrates fluentvalidation with an HTTP server serving
// its OpenAPI document and a validated JSON endpoint.
//
// Run:
//
//	go run ./_example
//
// Then fetch http://localhost:8080/openapi.json or POST to /orders.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	v "github.com/Gobd/fluentvalidation"
	"github.com/Gobd/fluentvalidation/openapi"
	"github.com/Gobd/fluentvalidation/transform"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email"`
	ItemCount    int      `json:"item_count"`
	Total        float64  `json:"total"`
	Coupons      []string `json:"coupons"`
	DeliverBy    string   `json:"deliver_by"`
}

func (o *Order) Normalize() {
	transform.TrimSpace(o)
	o.Email = strings.ToLower(o.Email)
}

// OrderValidator validates incoming orders.
type OrderValidator struct {
	*v.Validator[Order]
}

func NewOrderValidator(logger *slog.Logger) OrderValidator {
	ov := OrderValidator{v.New[Order](v.WithLogger(logger), v.WithMaxConcurrency(4))}
	v.RuleForString(ov.Validator, func(o Order) string { return o.CustomerName }).
		NotEmpty().
		WithName("customer_name").
		WithErrorCode("required").
		WithMessage("cannot be blank")
	v.RuleForString(ov.Validator, func(o Order) string { return o.CustomerName }).
		Length(1, 200).
		WithName("customer_name")
	v.RuleForString(ov.Validator, func(o Order) string { return o.Email }).
		Email().
		WithName("email").
		WithMessage("must be a valid email address")
	v.RuleForNumber(ov.Validator, func(o Order) int { return o.ItemCount }).
		Between(1, 100).
		WithName("item_count")
	v.RuleForNumber(ov.Validator, func(o Order) float64 { return o.Total }).
		Positive().
		WithName("total")
	v.RuleForEachString(ov.Validator, func(o Order) []string { return o.Coupons }).
		Alphanumeric().
		WithName("coupons").
		WithSeverity(v.SeverityWarning).
		OnFailure(v.FailureLogger(logger))
	v.RuleForString(ov.Validator, func(o Order) string { return o.DeliverBy }).
		DateLayout(time.DateOnly).
		WithName("deliver_by").
		When(func(o Order) bool { return o.DeliverBy != "" })
	return ov
}

var orders OrderValidator

func (Order) Rules() v.SchemaProvider {
	return orders
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	orders = NewOrderValidator(logger)

	doc := openapi.DocBase("Example API", "Demonstrates fluentvalidation", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:       "Create an order",
		Request:       Order{},
		Response:      Order{},
		FailureStatus: "422",
	})

	mux := http.NewServeMux()
	mux.Handle("GET /openapi.json", openapi.HandlerMust(doc))
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		order, res, err := orders.DecodeContext(r.Context(), r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		// Warnings do not reject the order.
		if errs := res.BySeverity(v.SeverityError); len(errs) > 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(errs)
			return
		}
		_ = json.NewEncoder(w).Encode(order)
	})

	logger.Info("listening", slog.String("addr", "http://localhost:8080"))
	if err := http.ListenAndServe(":8080", mux); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
