package clients

import (
	"log"

	"github.com/go-resty/resty/v2"
)

// ProductChecker confirms that a productId currently resolves to a product.
// It is a precondition gate, not a data fetch: callers only learn yes or no.
type ProductChecker interface {
	ProductExists(productID string) bool
}

// ProductAPIClient checks product existence with a single synchronous GET
// against the product service. It is injected where needed instead of living
// in package-level state.
type ProductAPIClient struct {
	http *resty.Client
}

// NewProductAPIClient creates a client targeting the product API at baseURL,
// e.g. "http://localhost:8080".
func NewProductAPIClient(baseURL string) *ProductAPIClient {
	return &ProductAPIClient{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// ProductExists issues one GET /api/products/{id}. Any 2xx response counts
// as existing. Transport failures and non-2xx statuses are both treated as
// "does not exist"; the caller cannot tell an absent product apart from an
// unreachable product service. No retry, no timeout beyond the client
// default.
func (c *ProductAPIClient) ProductExists(productID string) bool {
	resp, err := c.http.R().Get("/api/products/" + productID)
	if err != nil {
		log.Printf("Product existence check for %s failed: %v", productID, err)
		return false
	}
	return resp.IsSuccess()
}
