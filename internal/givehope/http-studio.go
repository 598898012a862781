// Студия документов: CRUD документов, операции над деревом блоков,
// библиотека пресетов и шаблонов, экспорт в HTML и PDF.
package givehope

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/dto"
	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/givehope/givehope.go/internal/givehope/editor/library"
	"github.com/givehope/givehope.go/internal/givehope/editor/richtext"
	"github.com/givehope/givehope.go/internal/givehope/export"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Services) AddStudioServices(g *echo.Group) {
	g.GET("studio/documents/", s.getDocumentList)
	g.POST("studio/documents/", s.createDocument)

	docGroup := g.Group("studio/documents/:documentId", s.DocumentMiddleware)
	docGroup.GET("/", s.getDocument)
	docGroup.PATCH("/", s.updateDocument)
	docGroup.DELETE("/", s.deleteDocument)

	docGroup.POST("/blocks/", s.insertBlock)
	docGroup.POST("/drop/", s.dropOnCanvas)
	docGroup.POST("/blocks/:blockId/duplicate/", s.duplicateBlock)
	docGroup.POST("/blocks/:blockId/reorder/", s.reorderBlock)
	docGroup.POST("/blocks/:blockId/mergetag/", s.insertMergeTag)
	docGroup.PATCH("/blocks/:blockId/content/", s.updateBlockContent)
	docGroup.PATCH("/blocks/:blockId/styles/", s.updateBlockStyles)
	docGroup.DELETE("/blocks/:blockId/", s.deleteBlock)
	docGroup.GET("/blocks/:blockId/", s.getBlock)

	docGroup.POST("/device/", s.setDevice)
	docGroup.POST("/template/:templateId/load/", s.loadTemplate)

	docGroup.GET("/export/html/", s.exportHTML)
	docGroup.GET("/export/pdf/", s.exportPDF)

	g.GET("studio/presets/", s.getPresetList)
	g.GET("studio/templates/", s.getTemplateList)
	g.GET("studio/mergetags/", s.getMergeTagList)

	g.POST("studio/richtext/", s.applyRichTextCommand)
}

// stateOf восстанавливает состояние редактора из снимка документа.
func stateOf(doc *dao.StudioDocument) *editor.State {
	return &editor.State{
		Blocks:     doc.Snapshot.Blocks,
		BodyStyles: doc.Snapshot.BodyStyles,
		Device:     editor.Device(doc.Device),
	}
}

// mutateDocument применяет операцию к состоянию редактора и сохраняет
// полученный снимок обратно в документ.
func (s *Services) mutateDocument(c echo.Context, fn func(*editor.State) error) error {
	doc := c.(DocumentContext).Document
	state := stateOf(&doc)

	if err := fn(state); err != nil {
		return EError(c, err)
	}

	blocks, bodyStyles := state.Snapshot()
	doc.Snapshot = dao.DocumentSnapshot{Snapshot: export.Snapshot{Blocks: blocks, BodyStyles: bodyStyles}}
	doc.Device = string(state.Device)

	if err := s.db.Save(&doc).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, doc.ToFullDTO())
}

func (s *Services) getDocumentList(c echo.Context) error {
	var documents []dao.StudioDocument
	if err := s.db.Order("updated_at desc").Find(&documents).Error; err != nil {
		return EError(c, err)
	}

	res := make([]dto.DocumentLight, len(documents))
	for i := range documents {
		res[i] = *documents[i].ToLightDTO()
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Services) createDocument(c echo.Context) error {
	var req documentCreateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrDocumentNameRequired)
	}

	state := editor.NewState()
	blocks, bodyStyles := state.Snapshot()

	doc := dao.StudioDocument{
		Name:     req.Name,
		Snapshot: dao.DocumentSnapshot{Snapshot: export.Snapshot{Blocks: blocks, BodyStyles: bodyStyles}},
		Device:   string(editor.DeviceDesktop),
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, doc.ToFullDTO())
}

func (s *Services) getDocument(c echo.Context) error {
	doc := c.(DocumentContext).Document
	return c.JSON(http.StatusOK, doc.ToFullDTO())
}

func (s *Services) updateDocument(c echo.Context) error {
	doc := c.(DocumentContext).Document

	var req documentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return EErrorDefined(c, apierrors.ErrDocumentNameRequired)
	}

	doc.Name = req.Name
	if err := s.db.Save(&doc).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, doc.ToLightDTO())
}

func (s *Services) deleteDocument(c echo.Context) error {
	doc := c.(DocumentContext).Document
	if err := s.db.Delete(&doc).Error; err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Services) insertBlock(c echo.Context) error {
	var req blockInsertRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if !editor.BlockType(req.Type).Valid() {
		return EErrorDefined(c, apierrors.ErrUnknownBlockType)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		index := len(state.Blocks)
		if req.Index != nil {
			index = *req.Index
		}
		state.InsertNewBlock(editor.BlockType(req.Type), index)
		return nil
	})
}

func (s *Services) dropOnCanvas(c echo.Context) error {
	var req dropRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	if req.Payload.PresetId != "" && s.library.ExpandPreset(req.Payload.PresetId) == nil {
		return EErrorDefined(c, apierrors.ErrUnknownPreset)
	}
	if req.Payload.BlockType != "" && !req.Payload.BlockType.Valid() {
		return EErrorDefined(c, apierrors.ErrUnknownBlockType)
	}
	if req.Target != nil && req.Target.Side != editor.SideTop && req.Target.Side != editor.SideBottom {
		return EErrorDefined(c, apierrors.ErrBadDropTarget)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		state.Drop(req.Payload, req.Target, s.library)
		return nil
	})
}

func (s *Services) duplicateBlock(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}
	return s.mutateDocument(c, func(state *editor.State) error {
		if state.Block(id) == nil {
			return apierrors.ErrBlockNotFound
		}
		state.DuplicateBlock(id)
		return nil
	})
}

func (s *Services) reorderBlock(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		if state.Block(id) == nil {
			return apierrors.ErrBlockNotFound
		}
		state.ReorderBlock(id, req.Index)
		return nil
	})
}

func (s *Services) insertMergeTag(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}

	var req mergeTagRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if !library.KnownMergeTag(req.Tag) {
		return EErrorDefined(c, apierrors.ErrUnknownMergeTag)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		b := state.Block(id)
		if b == nil {
			return apierrors.ErrBlockNotFound
		}
		switch b.Type {
		case editor.BlockText, editor.BlockHeading, editor.BlockButton:
		default:
			return apierrors.ErrMergeTagNotApplicable
		}
		state.SelectBlock(id)
		state.InsertMergeTag(req.Tag)
		return nil
	})
}

func (s *Services) updateBlockContent(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}

	var req contentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	switch req.Key {
	case "text", "url", "alt", "html":
	default:
		return EErrorDefined(c, apierrors.ErrUnknownContentField)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		if state.Block(id) == nil {
			return apierrors.ErrBlockNotFound
		}
		state.UpdateBlockContent(id, req.Key, req.Value)
		return nil
	})
}

func (s *Services) updateBlockStyles(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}

	var patch editor.Styles
	if err := c.Bind(&patch); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		if state.Block(id) == nil {
			return apierrors.ErrBlockNotFound
		}
		state.UpdateBlockStyles(id, patch)
		return nil
	})
}

func (s *Services) deleteBlock(c echo.Context) error {
	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}
	return s.mutateDocument(c, func(state *editor.State) error {
		if state.Block(id) == nil {
			return apierrors.ErrBlockNotFound
		}
		state.DeleteBlock(id)
		return nil
	})
}

// getBlock возвращает блок для панели свойств.
func (s *Services) getBlock(c echo.Context) error {
	doc := c.(DocumentContext).Document

	id, err := uuid.FromString(c.Param("blockId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}

	state := stateOf(&doc)
	b := state.Block(id)
	if b == nil {
		return EErrorDefined(c, apierrors.ErrBlockNotFound)
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Services) setDevice(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	switch editor.Device(req.Device) {
	case editor.DeviceDesktop, editor.DeviceTablet, editor.DeviceMobile:
	default:
		return EErrorDefined(c, apierrors.ErrUnknownDevice)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		state.SetDevice(editor.Device(req.Device))
		return nil
	})
}

// loadTemplate заменяет содержимое документа шаблоном. Замена необратима,
// поэтому запрос без подтверждения отклоняется.
func (s *Services) loadTemplate(c echo.Context) error {
	var req templateLoadRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if !req.Confirm {
		return EErrorDefined(c, apierrors.ErrTemplateLoadConfirm)
	}

	blocks, bodyStyles, ok := s.library.ExpandTemplate(c.Param("templateId"))
	if !ok {
		return EErrorDefined(c, apierrors.ErrUnknownTemplate)
	}

	return s.mutateDocument(c, func(state *editor.State) error {
		state.LoadTemplate(blocks, bodyStyles)
		return nil
	})
}

func (s *Services) exportHTML(c echo.Context) error {
	doc := c.(DocumentContext).Document

	var buf bytes.Buffer
	if err := export.HTML(doc.Snapshot.Snapshot, &buf); err != nil {
		return EErrorDefined(c, apierrors.ErrExportFailed)
	}
	return c.HTML(http.StatusOK, buf.String())
}

func (s *Services) exportPDF(c echo.Context) error {
	doc := c.(DocumentContext).Document

	var buf bytes.Buffer
	if err := export.PDF(doc.Snapshot.Snapshot, doc.Name, cfg.WebURL, &buf); err != nil {
		return EErrorDefined(c, apierrors.ErrExportFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Name+".pdf"))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Services) getPresetList(c echo.Context) error {
	return c.JSON(http.StatusOK, s.library.Presets())
}

func (s *Services) getTemplateList(c echo.Context) error {
	return c.JSON(http.StatusOK, s.library.Templates())
}

func (s *Services) getMergeTagList(c echo.Context) error {
	return c.JSON(http.StatusOK, library.MergeTags)
}

// applyRichTextCommand разбирает HTML, применяет команду панели форматирования
// к выделению и возвращает нормализованный HTML вместе с активными форматами.
func (s *Services) applyRichTextCommand(c echo.Context) error {
	var req richTextRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	doc, err := richtext.Parse(strings.NewReader(req.HTML))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrBadRichTextPayload)
	}

	ed := richtext.NewEditor(doc)
	ed.Select(richtext.Selection{Block: req.Selection.Block, Start: req.Selection.Start, End: req.Selection.End})

	switch req.Command {
	case "":
	case "bold":
		ed.ToggleBold()
	case "italic":
		ed.ToggleItalic()
	case "underline":
		ed.ToggleUnderline()
	case "h1":
		ed.SetBlockType(richtext.Heading1)
	case "h2":
		ed.SetBlockType(richtext.Heading2)
	case "blockquote":
		ed.SetBlockType(richtext.Blockquote)
	case "ul":
		ed.SetBlockType(richtext.BulletList)
	case "ol":
		ed.SetBlockType(richtext.OrderedList)
	case "insertText":
		ed.InsertText(req.Text)
	default:
		return EErrorDefined(c, apierrors.ErrBadRichTextPayload)
	}

	return c.JSON(http.StatusOK, richTextResponse{
		HTML:    ed.Document().Serialize(),
		Formats: ed.ActiveFormats(),
	})
}
