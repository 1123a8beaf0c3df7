package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/application"
	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single multipart request.
const maxUploadBytes = 32 << 20

type FormHandler struct {
	workflow  *application.WorkflowService
	retrieval *application.RetrievalService
	document  *application.DocumentService
}

func NewFormHandler(workflow *application.WorkflowService, retrieval *application.RetrievalService, document *application.DocumentService) *FormHandler {
	return &FormHandler{workflow: workflow, retrieval: retrieval, document: document}
}

// Submit accepts a multipart request: a "data" JSON part plus any number of
// "files" attachments.
func (h *FormHandler) Submit(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input form.SubmitInput
	if err := json.Unmarshal([]byte(c.PostForm("data")), &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid submission payload"})
		return
	}
	files, err := readFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	input.Files = files

	sub, err := h.workflow.Submit(actor, input)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
	case errors.Is(err, application.ErrAreaManagerMissing):
		c.JSON(http.StatusOK, response.ResultResponse{Result: "area_manager_missing"})
	case errors.Is(err, application.ErrEhsManagerMissing):
		c.JSON(http.StatusOK, response.ResultResponse{Result: "ehs_manager_missing"})
	case errors.Is(err, application.ErrNotApplicable):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unsupported form type"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to create submission"})
	default:
		c.JSON(http.StatusCreated, response.ResultResponse{Result: "success", ID: sub.ID})
	}
}

// Inbox returns the role-scoped submission list with status counts.
func (h *FormHandler) Inbox(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formType, err := form.ParseType(c.Query("form_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid to date"})
		return
	}

	inbox, err := h.retrieval.GetInbox(actor, formType, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load inbox"})
		return
	}
	c.JSON(http.StatusOK, inbox)
}

// Detail returns one submission with history and document metadata.
func (h *FormHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid submission id"})
		return
	}
	detail, err := h.retrieval.RequestDetail(id)
	if errors.Is(err, application.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load submission"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateStatus applies one workflow transition.
func (h *FormHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid submission id"})
		return
	}
	var input form.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status is required"})
		return
	}

	sub, err := h.workflow.UpdateStatus(actor, id, input)
	switch {
	case errors.Is(err, application.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "submission not found"})
	case errors.Is(err, application.ErrNotApplicable):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status workflow not applicable"})
	case errors.Is(err, application.ErrTerminalState):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "submission is already closed or rejected"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to update status"})
	default:
		c.JSON(http.StatusOK, response.ResultResponse{Result: "success", ID: sub.ID})
	}
}

// UpdateForm replaces the payload and appends documents.
func (h *FormHandler) UpdateForm(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid submission id"})
		return
	}

	var input form.UpdateFormInput
	if err := json.Unmarshal([]byte(c.PostForm("data")), &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid update payload"})
		return
	}
	files, err := readFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	input.Files = files

	sub, err := h.workflow.UpdateForm(actor, id, input)
	switch {
	case errors.Is(err, application.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "submission not found"})
	case errors.Is(err, application.ErrTerminalState):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "submission is already closed or rejected"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to update submission"})
	default:
		c.JSON(http.StatusOK, response.ResultResponse{Result: "success", ID: sub.ID})
	}
}

// Schema returns one form definition with the sections, fields and
// validation rules the front-end renders it from.
func (h *FormHandler) Schema(c *gin.Context) {
	formType, err := form.ParseType(c.Query("form_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	schema, err := h.retrieval.FormSchema(formType, c.Query("form_type_key"))
	if errors.Is(err, application.ErrFormNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "form not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load form schema"})
		return
	}
	c.JSON(http.StatusOK, schema)
}

// Definitions lists the form definitions of one type.
func (h *FormHandler) Definitions(c *gin.Context) {
	formType, err := form.ParseType(c.Query("form_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defs, err := h.retrieval.Definitions(formType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load form definitions"})
		return
	}
	c.JSON(http.StatusOK, defs)
}

// SubmissionAllowed reports whether the caller may open a new work permit of
// the given sub-type.
func (h *FormHandler) SubmissionAllowed(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	formType, err := form.ParseType(c.Query("form_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	allowed, err := h.retrieval.SubmissionAllowed(actor, formType, c.Query("form_type_key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to check submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}

// Document streams one stored attachment back in its original form.
func (h *FormHandler) Document(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	doc, content, err := h.document.Get(id)
	if errors.Is(err, application.ErrDocumentNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load document"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, content)
}

func readFiles(c *gin.Context) ([]form.FileInput, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid multipart request")
	}

	var total int64
	var files []form.FileInput
	for _, fh := range mf.File["files"] {
		total += fh.Size
		if total > maxUploadBytes {
			return nil, fmt.Errorf("attachments exceed the upload limit")
		}
		content, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, form.FileInput{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %q", fh.Filename)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %q", fh.Filename)
	}
	return content, nil
}

func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// date-only form is accepted too
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
