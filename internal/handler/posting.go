package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PostingHandler обрабатывает HTTP-запросы публикаций и поиска.
type PostingHandler struct {
	*BaseHandler
	postingUseCase domain.PostingUseCase
}

// NewPostingHandler создает новый экземпляр PostingHandler.
func NewPostingHandler(postingUseCase domain.PostingUseCase, logger *logrus.Logger) *PostingHandler {
	return &PostingHandler{
		BaseHandler:    NewBaseHandler(logger),
		postingUseCase: postingUseCase,
	}
}

func toPostingInput(postingType api.PostingType, description string, skillID int64) domain.PostingInput {
	// Неизвестный тип остается пустым и отклоняется валидацией
	parsed, _ := domain.ParsePostingType(string(postingType))
	return domain.PostingInput{
		Type:        parsed,
		Description: description,
		SkillID:     skillID,
	}
}

// SearchPostings ищет публикации по строке запроса.
func (h *PostingHandler) SearchPostings(c echo.Context, params api.SearchPostingsParams) error {
	var query string
	if params.Q != nil {
		query = *params.Q
	}
	logEntry := h.logRequest(c, "search_postings").WithField("query", query)
	if params.Active != nil {
		logEntry = logEntry.WithField("active", *params.Active)
	}

	postings, err := h.postingUseCase.Search(c.Request().Context(), query, params.Active)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to search postings")
	}

	logEntry.WithField("postings_count", len(postings)).Info("Postings found")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"postings": toAPIPostings(postings),
	})
}

// CreatePosting публикует предложение или запрос от имени текущего пользователя.
func (h *PostingHandler) CreatePosting(c echo.Context) error {
	var req api.CreatePostingJSONRequestBody
	if ok, err := h.bindBody(c, &req, "create_posting"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "create_posting").WithFields(logrus.Fields{
		"type":     req.Type,
		"skill_id": req.SkillId,
	})
	authorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}

	posting, err := h.postingUseCase.CreatePosting(c.Request().Context(), authorID,
		toPostingInput(req.Type, req.Description, req.SkillId))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create posting")
	}

	logEntry.WithField("posting_id", posting.ID).Info("Posting created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"posting": toAPIPosting(posting),
	})
}

// GetPosting возвращает публикацию по ID.
func (h *PostingHandler) GetPosting(c echo.Context, postingID api.PostingId) error {
	logEntry := h.logRequest(c, "get_posting").WithField("posting_id", postingID)

	posting, err := h.postingUseCase.GetPosting(c.Request().Context(), postingID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get posting")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"posting": toAPIPosting(posting),
	})
}

// UpdatePosting изменяет публикацию. Доступно только автору.
func (h *PostingHandler) UpdatePosting(c echo.Context, postingID api.PostingId) error {
	var req api.UpdatePostingJSONRequestBody
	if ok, err := h.bindBody(c, &req, "update_posting"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "update_posting").WithField("posting_id", postingID)
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}

	posting, err := h.postingUseCase.UpdatePosting(c.Request().Context(), actorID, postingID,
		toPostingInput(req.Type, req.Description, req.SkillId))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to update posting")
	}

	logEntry.Info("Posting updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"posting": toAPIPosting(posting),
	})
}

// ClosePosting снимает публикацию с показа.
func (h *PostingHandler) ClosePosting(c echo.Context, postingID api.PostingId) error {
	logEntry := h.logRequest(c, "close_posting").WithField("posting_id", postingID)
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}

	posting, err := h.postingUseCase.ClosePosting(c.Request().Context(), actorID, postingID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to close posting")
	}

	logEntry.Info("Posting closed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"posting": toAPIPosting(posting),
	})
}
