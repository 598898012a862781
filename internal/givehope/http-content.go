// Публикации полевых сотрудников: CRUD, публикация, улучшение текста.
package givehope

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/dto"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var postPolicy = bluemonday.UGCPolicy()

func (s *Services) AddContentServices(g *echo.Group) {
	g.GET("content/posts/", s.getPostList)
	g.POST("content/posts/", s.createPost)
	g.GET("content/posts/:postId/", s.getPost)
	g.PATCH("content/posts/:postId/", s.updatePost)
	g.DELETE("content/posts/:postId/", s.deletePost)
	g.POST("content/posts/:postId/publish/", s.publishPost)
	g.POST("content/posts/:postId/polish/", s.polishPost)
}

func (s *Services) getPostList(c echo.Context) error {
	query := s.db.Order("created_at desc")
	if c.QueryParam("published") == "true" {
		query = query.Where("published = ?", true)
	}

	var posts []dao.ContentPost
	if err := query.Find(&posts).Error; err != nil {
		return EError(c, err)
	}

	res := make([]dto.PostLight, len(posts))
	for i := range posts {
		res[i] = *posts[i].ToLightDTO()
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Services) createPost(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if strings.TrimSpace(req.Body) == "" {
		return EErrorDefined(c, apierrors.ErrPostBodyRequired)
	}

	post := dao.ContentPost{
		Title:    req.Title,
		Body:     postPolicy.Sanitize(req.Body),
		Author:   req.Author,
		Location: req.Location,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, post.ToLightDTO())
}

func (s *Services) loadPost(c echo.Context) (dao.ContentPost, error) {
	post, err := dao.GetPost(s.db, c.Param("postId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post, apierrors.ErrPostNotFound
		}
		return post, err
	}
	return post, nil
}

func (s *Services) getPost(c echo.Context) error {
	post, err := s.loadPost(c)
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, post.ToLightDTO())
}

func (s *Services) updatePost(c echo.Context) error {
	post, err := s.loadPost(c)
	if err != nil {
		return EError(c, err)
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	if strings.TrimSpace(req.Title) != "" {
		post.Title = req.Title
	}
	if strings.TrimSpace(req.Body) != "" {
		post.Body = postPolicy.Sanitize(req.Body)
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Location != "" {
		post.Location = req.Location
	}

	if err := s.db.Save(&post).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, post.ToLightDTO())
}

func (s *Services) deletePost(c echo.Context) error {
	post, err := s.loadPost(c)
	if err != nil {
		return EError(c, err)
	}
	if err := s.db.Delete(&post).Error; err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Services) publishPost(c echo.Context) error {
	post, err := s.loadPost(c)
	if err != nil {
		return EError(c, err)
	}
	if post.Published {
		return EErrorDefined(c, apierrors.ErrPostAlreadyPublic)
	}

	now := time.Now()
	post.Published = true
	post.PublishedAt = &now
	if err := s.db.Save(&post).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, post.ToLightDTO())
}

// polishPost прогоняет текст публикации через помощника и возвращает
// улучшенный вариант без сохранения.
func (s *Services) polishPost(c echo.Context) error {
	post, err := s.loadPost(c)
	if err != nil {
		return EError(c, err)
	}
	if s.assistant == nil {
		return EErrorDefined(c, apierrors.ErrAssistUnavailable)
	}

	polished, err := s.assistant.PolishPost(c.Request().Context(), post.Body)
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"draft": postPolicy.Sanitize(polished),
	})
}
