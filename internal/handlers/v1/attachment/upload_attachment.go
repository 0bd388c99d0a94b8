package attachment

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// UploadAttachmentInput is the Huma input for attaching a receipt. The body
// is multipart/form-data with the file under the "file" field.
type UploadAttachmentInput struct {
	UserID  string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID      string `path:"id" doc:"Transaction UUID"`
	RawBody multipart.Form
}

// UploadAttachmentOutput is the response for attaching a receipt.
type UploadAttachmentOutput struct {
	Status int
	Body   Attachment
}

// attachmentUploader is the interface for storing receipt uploads.
type attachmentUploader interface {
	UploadAttachment(ctx context.Context, ownerID, transactionID uuid.UUID, filename string, size int64, r io.Reader) (*storage.Attachment, error)
}

// UploadAttachmentHandler handles POST /v1/transaction/{id}/attachment.
type UploadAttachmentHandler struct {
	AttachmentService attachmentUploader
}

// NewUploadAttachmentHandler creates a new UploadAttachmentHandler.
func NewUploadAttachmentHandler(svc attachmentUploader) *UploadAttachmentHandler {
	return &UploadAttachmentHandler{AttachmentService: svc}
}

// Register registers the upload attachment endpoint with the Huma API.
func (h *UploadAttachmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upload-attachment",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/attachment",
		Summary:     "Attach a receipt",
		Description: "Stores a receipt image or PDF against a transaction. Each transaction holds at most one attachment.",
		Tags:        []string{"Attachments"},
	}, h.handle)
}

func (h *UploadAttachmentHandler) handle(ctx context.Context, input *UploadAttachmentInput) (*UploadAttachmentOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	txID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id")
	}

	files := input.RawBody.File["file"]
	if len(files) == 0 {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "missing file field")
	}
	header := files[0]

	f, err := header.Open()
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "failed to read uploaded file", err)
	}
	defer f.Close()

	row, err := h.AttachmentService.UploadAttachment(ctx, ownerID, txID, header.Filename, header.Size, f)
	if err != nil {
		return nil, request.ServiceError(err, "failed to store attachment")
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("attachmentID", row.ID.String())
		logData.AddData("attachmentBytes", row.SizeBytes)
	}

	return &UploadAttachmentOutput{Status: http.StatusCreated, Body: fromStorage(row)}, nil
}
