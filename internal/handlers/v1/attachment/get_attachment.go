package attachment

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// GetAttachmentInput is the Huma input for downloading a receipt.
type GetAttachmentInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// GetAttachmentOutput streams the receipt file back to the caller.
type GetAttachmentOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// attachmentGetter is the interface for reading stored receipts.
type attachmentGetter interface {
	GetAttachment(ctx context.Context, ownerID, transactionID uuid.UUID) (*storage.Attachment, io.ReadCloser, error)
}

// GetAttachmentHandler handles GET /v1/transaction/{id}/attachment.
type GetAttachmentHandler struct {
	AttachmentService attachmentGetter
}

// NewGetAttachmentHandler creates a new GetAttachmentHandler.
func NewGetAttachmentHandler(svc attachmentGetter) *GetAttachmentHandler {
	return &GetAttachmentHandler{AttachmentService: svc}
}

// Register registers the download attachment endpoint with the Huma API.
func (h *GetAttachmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-attachment",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}/attachment",
		Summary:     "Download a receipt",
		Tags:        []string{"Attachments"},
	}, h.handle)
}

func (h *GetAttachmentHandler) handle(ctx context.Context, input *GetAttachmentInput) (*GetAttachmentOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	txID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id")
	}

	row, rc, err := h.AttachmentService.GetAttachment(ctx, ownerID, txID)
	if err != nil {
		return nil, request.ServiceError(err, "failed to read attachment")
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("failed to close attachment reader")
		}
	}()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read attachment", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(row.OriginalName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &GetAttachmentOutput{
		ContentType:        contentType,
		ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": row.OriginalName}),
		Body:               content,
	}, nil
}
