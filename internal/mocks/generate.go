// Package mocks provides gomock implementations of the backend and document ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	orders := mocks.NewMockOrderAPI(ctrl)
//	orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(order, nil)
package mocks

// Backend ports implemented by adapters/backend.Client.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=overview_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports OverviewAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports OrderAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=inventory_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports InventoryAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=store_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports StoreAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=bill_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports BillAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_api_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports CatalogAPI

// Invoice rendering and delivery.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=invoice_renderer_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports InvoiceRenderer
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=document_sender_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports DocumentSender

// Audit trail.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=audit_repository_mock.go github.com/jhaverenterprises/uniform-admin/internal/ports AuditRepository
