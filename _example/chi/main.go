// Command chi demonstrates fluentvalidation with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then fetch http://localhost:8080/openapi.json or POST to /orders.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	v "github.com/Gobd/fluentvalidation"
	"github.com/Gobd/fluentvalidation/openapi"
	"github.com/go-chi/chi/v5"
)

type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

var orders = func() *v.Validator[Order] {
	ov := v.New[Order]()
	v.RuleForString(ov, func(o Order) string { return o.CustomerName }).NotEmpty().WithName("customer_name")
	v.RuleForString(ov, func(o Order) string { return o.CustomerName }).Length(1, 200).WithName("customer_name")
	v.RuleForNumber(ov, func(o Order) int { return o.ItemCount }).GreaterThanOrEqual(1).WithName("item_count")
	v.RuleForNumber(ov, func(o Order) float64 { return o.Total }).GreaterThanOrEqual(0.01).WithName("total")
	return ov
}()

func (Order) Rules() v.SchemaProvider {
	return orders
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	doc := openapi.DocBase("Example API (chi)", "Demonstrates fluentvalidation with chi", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  Order{},
		Response: Order{},
	})

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/openapi.json", openapi.HandlerMust(doc))
	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		order, res, err := orders.Decode(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if res.IsFailure() {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(res.Failures())
			return
		}
		_ = json.NewEncoder(w).Encode(order)
	})

	logger.Info("listening", slog.String("addr", "http://localhost:8080"))
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
