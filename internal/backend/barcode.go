package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type barcodeSearchInput struct {
	Barcode string `json:"barcode"`
}

type barcodeGenerateInput struct {
	ProductID int64 `json:"product_id"`
}

// SearchBarcode looks up a product by barcode. A missing code is a 404
// from the backend, propagated so the scanner page can say so.
func (c *Client) SearchBarcode(ctx context.Context, barcode string) (BarcodeProduct, error) {
	var out BarcodeProduct
	if err := c.do(ctx, http.MethodPost, "/barcode/search", nil, barcodeSearchInput{Barcode: barcode}, &out); err != nil {
		return BarcodeProduct{}, err
	}
	return out, nil
}

// GenerateBarcode assigns a barcode and SKU to a product.
func (c *Client) GenerateBarcode(ctx context.Context, productID int64) (GeneratedBarcode, error) {
	var out GeneratedBarcode
	if err := c.do(ctx, http.MethodPost, "/barcode/generate", nil, barcodeGenerateInput{ProductID: productID}, &out); err != nil {
		return GeneratedBarcode{}, err
	}
	return out, nil
}

// QuickSale records a sale straight from a barcode lookup. Barcode and
// quantity travel as query parameters.
func (c *Client) QuickSale(ctx context.Context, barcode string, quantity int) (QuickSaleResult, error) {
	q := url.Values{}
	q.Set("barcode", barcode)
	q.Set("quantity", strconv.Itoa(quantity))
	var out QuickSaleResult
	if err := c.do(ctx, http.MethodPost, "/barcode/quick-sale", q, nil, &out); err != nil {
		return QuickSaleResult{}, err
	}
	return out, nil
}

// InventoryCheck returns the stock position behind a barcode.
func (c *Client) InventoryCheck(ctx context.Context, barcode string) (InventoryCheck, error) {
	var out InventoryCheck
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/barcode/inventory-check/%s", url.PathEscape(barcode)), nil, nil, &out); err != nil {
		return InventoryCheck{}, err
	}
	return out, nil
}
