package apiclient

import (
	"context"
	"encoding/json"
	"net/url"

	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/entity"

	"github.com/pkg/errors"
)

// detailResponse is the {"detail": "..."} confirmation most actions answer with.
type detailResponse struct {
	Detail string `json:"detail"`
}

func orderPath(orderID, action string) string {
	path := "/orders/" + url.PathEscape(orderID)
	if action == "" {
		return path + "/"
	}

	return path + "/" + action + "/"
}

func (c *Client) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.getList(ctx, "/orders/", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	var order entity.Order
	if err := c.GetJSON(ctx, orderPath(orderID, ""), &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, order entity.NewOrder) (*entity.Order, error) {
	var raw json.RawMessage
	if err := c.PostJSON(ctx, "/orders/create_order/", order, &raw); err != nil {
		return nil, err
	}

	return unwrapOrder(raw)
}

func (c *Client) StartOrder(ctx context.Context, orderID string) error {
	return c.PostJSON(ctx, orderPath(orderID, "start"), nil, nil)
}

func (c *Client) ValidateToken(ctx context.Context, orderID, token string) (*entity.Order, error) {
	var raw json.RawMessage
	if err := c.PostJSON(ctx, orderPath(orderID, "validate_token"), map[string]string{"jwt": token}, &raw); err != nil {
		return nil, err
	}

	return unwrapOrder(raw)
}

// CloseOrder sends exactly one multipart POST to the fail or succeed endpoint.
func (c *Client) CloseOrder(ctx context.Context, submission *entity.ClosureSubmission) (string, error) {
	var action string
	switch submission.Outcome {
	case entity.OutcomeFailed:
		action = "fail"
	case entity.OutcomeSucceeded:
		action = "succeed"
	default:
		return "", errors.Errorf("unknown closure outcome %q", submission.Outcome)
	}

	var resp detailResponse
	if err := c.PostMultipart(ctx, orderPath(submission.OrderID, action), submission.Fields(), submission.Files(), &resp); err != nil {
		return "", err
	}

	return resp.Detail, nil
}

func (c *Client) Stats(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats
	if err := c.GetJSON(ctx, "/orders/stats/", &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// DownloadPDF fetches the order report, or the full report with evidences when full is set.
func (c *Client) DownloadPDF(ctx context.Context, orderID string, full bool) (*entity.Document, error) {
	action := "download_pdf"
	if full {
		action = "download_full_pdf"
	}

	return c.GetBlob(ctx, orderPath(orderID, action))
}

func (c *Client) Audits(ctx context.Context, orderID string) ([]*entity.AuditEntry, error) {
	// no trailing slash on this route
	var entries []*entity.AuditEntry
	if err := c.getList(ctx, "/orders/"+url.PathEscape(orderID)+"/audits", &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// unwrapOrder accepts {"order": {...}} as well as a bare order object.
func unwrapOrder(raw json.RawMessage) (*entity.Order, error) {
	if len(raw) == 0 {
		return &entity.Order{}, nil
	}

	var envelope struct {
		Order *entity.Order `json:"order"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "decode order"))
	}
	if envelope.Order != nil {
		return envelope.Order, nil
	}

	var order entity.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "decode order"))
	}

	return &order, nil
}
