package richtext

// Format - имя инлайнового или блочного формата для панели инструментов.
type Format string

const (
	FormatBold      Format = "bold"
	FormatItalic    Format = "italic"
	FormatUnderline Format = "underline"
	FormatH1        Format = "h1"
	FormatH2        Format = "h2"
	FormatQuote     Format = "blockquote"
	FormatUL        Format = "ul"
	FormatOL        Format = "ol"
)

// Selection - выделение внутри одного блочного элемента: руны [Start, End).
// При Start == End это позиция каретки.
type Selection struct {
	Block int
	Start int
	End   int
}

func (s Selection) caret() bool { return s.Start == s.End }

// Editor - машина состояний редактирования форматированного текста: документ,
// выделение и отложенные инлайновые форматы для следующего ввода.
// Внешние изменения значения не должны попадать в модель, пока поверхность
// держит фокус ввода: владелец обязан вызывать SetValue только без фокуса,
// иначе каретка прыгает.
type Editor struct {
	doc     Document
	sel     Selection
	pending Span // форматирование для вставки в позиции каретки
}

// NewEditor создает редактор поверх разобранного документа.
func NewEditor(doc *Document) *Editor {
	e := &Editor{}
	if doc != nil {
		e.doc = *doc
	}
	e.doc.Normalize()
	return e
}

// Document возвращает текущий документ.
func (e *Editor) Document() *Document { return &e.doc }

// Select устанавливает выделение, ограничивая его границами блока.
func (e *Editor) Select(sel Selection) {
	if sel.Block < 0 {
		sel.Block = 0
	}
	if sel.Block >= len(e.doc.Blocks) {
		sel.Block = len(e.doc.Blocks) - 1
	}
	length := blockLen(e.doc.Blocks[sel.Block])
	sel.Start = clamp(sel.Start, 0, length)
	sel.End = clamp(sel.End, sel.Start, length)
	e.sel = sel
	e.pending = formatAt(e.doc.Blocks[sel.Block], sel.Start)
}

// ActiveFormats возвращает активные форматы в текущем выделении: инлайновый
// формат активен, если им обладает весь выделенный текст (или отложенные
// форматы каретки), блочный - по виду текущего блока.
func (e *Editor) ActiveFormats() []Format {
	var res []Format

	marks := e.pending
	if !e.sel.caret() {
		marks = commonFormat(e.doc.Blocks[e.sel.Block], e.sel.Start, e.sel.End)
	}
	if marks.Bold {
		res = append(res, FormatBold)
	}
	if marks.Italic {
		res = append(res, FormatItalic)
	}
	if marks.Underline {
		res = append(res, FormatUnderline)
	}

	switch e.doc.Blocks[e.sel.Block].Kind {
	case Heading1:
		res = append(res, FormatH1)
	case Heading2:
		res = append(res, FormatH2)
	case Blockquote:
		res = append(res, FormatQuote)
	case BulletList:
		res = append(res, FormatUL)
	case OrderedList:
		res = append(res, FormatOL)
	}

	return res
}

func (e *Editor) ToggleBold()      { e.toggleInline(FormatBold) }
func (e *Editor) ToggleItalic()    { e.toggleInline(FormatItalic) }
func (e *Editor) ToggleUnderline() { e.toggleInline(FormatUnderline) }

func (e *Editor) toggleInline(f Format) {
	if e.sel.caret() {
		switch f {
		case FormatBold:
			e.pending.Bold = !e.pending.Bold
		case FormatItalic:
			e.pending.Italic = !e.pending.Italic
		case FormatUnderline:
			e.pending.Underline = !e.pending.Underline
		}
		return
	}

	block := &e.doc.Blocks[e.sel.Block]
	active := commonFormat(*block, e.sel.Start, e.sel.End)

	var set bool
	switch f {
	case FormatBold:
		set = !active.Bold
	case FormatItalic:
		set = !active.Italic
	case FormatUnderline:
		set = !active.Underline
	}

	applyFormat(block, e.sel.Start, e.sel.End, f, set)
	e.doc.Normalize()
	e.Select(e.sel)
}

// SetBlockType меняет вид текущего блока. Повторное применение того же вида
// возвращает блок к параграфу, как это делает formatBlock в браузере.
func (e *Editor) SetBlockType(kind BlockKind) {
	block := &e.doc.Blocks[e.sel.Block]
	if block.Kind == kind {
		kind = Paragraph
	}

	fromList := block.Kind == BulletList || block.Kind == OrderedList
	toList := kind == BulletList || kind == OrderedList

	switch {
	case fromList && !toList:
		var spans []Span
		for _, item := range block.Items {
			spans = append(spans, item.Spans...)
		}
		block.Spans = spans
		block.Items = nil
	case !fromList && toList:
		block.Items = []ListItem{{Spans: block.Spans}}
		block.Spans = nil
	}
	block.Kind = kind
	e.doc.Normalize()
}

// InsertText вставляет текст в позицию каретки с отложенным форматированием;
// непустое выделение предварительно удаляется.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	if !e.sel.caret() {
		e.DeleteSelection()
	}

	block := &e.doc.Blocks[e.sel.Block]
	span := e.pending
	span.Text = text

	spans, at := splitAt(spansOf(*block), e.sel.Start)
	spans = append(spans[:at], append([]Span{span}, spans[at:]...)...)
	setSpans(block, spans)

	e.doc.Normalize()
	caret := e.sel.Start + len([]rune(text))
	e.Select(Selection{Block: e.sel.Block, Start: caret, End: caret})
	e.pending = span
	e.pending.Text = ""
}

// DeleteSelection удаляет выделенный текст, каретка остается в его начале.
func (e *Editor) DeleteSelection() {
	if e.sel.caret() {
		return
	}
	block := &e.doc.Blocks[e.sel.Block]
	spans := spansOf(*block)
	spans = cutRange(spans, e.sel.Start, e.sel.End)
	setSpans(block, spans)
	e.doc.Normalize()
	e.Select(Selection{Block: e.sel.Block, Start: e.sel.Start, End: e.sel.Start})
}

// --- манипуляции пробегами ---

func spansOf(b BlockElement) []Span {
	if b.Kind == BulletList || b.Kind == OrderedList {
		var spans []Span
		for _, item := range b.Items {
			spans = append(spans, item.Spans...)
		}
		return spans
	}
	return b.Spans
}

func setSpans(b *BlockElement, spans []Span) {
	if b.Kind == BulletList || b.Kind == OrderedList {
		b.Items = []ListItem{{Spans: spans}}
		b.Spans = nil
		return
	}
	b.Spans = spans
}

func blockLen(b BlockElement) int {
	n := 0
	for _, s := range spansOf(b) {
		n += len([]rune(s.Text))
	}
	return n
}

// splitAt режет пробеги по руне offset и возвращает индекс пробега,
// начинающегося точно в offset.
func splitAt(spans []Span, offset int) ([]Span, int) {
	pos := 0
	for i, s := range spans {
		runes := []rune(s.Text)
		if offset == pos {
			return spans, i
		}
		if offset < pos+len(runes) {
			left, right := s, s
			left.Text = string(runes[:offset-pos])
			right.Text = string(runes[offset-pos:])
			res := append(append(append([]Span{}, spans[:i]...), left, right), spans[i+1:]...)
			return res, i + 1
		}
		pos += len(runes)
	}
	return spans, len(spans)
}

func cutRange(spans []Span, start, end int) []Span {
	spans, from := splitAt(spans, start)
	spans, to := splitAt(spans, end)
	return append(spans[:from], spans[to:]...)
}

func formatAt(b BlockElement, offset int) Span {
	pos := 0
	spans := spansOf(b)
	for _, s := range spans {
		runes := len([]rune(s.Text))
		// Каретка на границе наследует формат пробега слева
		if offset <= pos+runes {
			s.Text = ""
			return s
		}
		pos += runes
	}
	return Span{}
}

// commonFormat возвращает форматы, которыми обладает весь диапазон.
func commonFormat(b BlockElement, start, end int) Span {
	res := Span{Bold: true, Italic: true, Underline: true}
	pos := 0
	found := false
	for _, s := range spansOf(b) {
		runes := len([]rune(s.Text))
		if pos < end && pos+runes > start {
			found = true
			res.Bold = res.Bold && s.Bold
			res.Italic = res.Italic && s.Italic
			res.Underline = res.Underline && s.Underline
		}
		pos += runes
	}
	if !found {
		return Span{}
	}
	return res
}

func applyFormat(b *BlockElement, start, end int, f Format, set bool) {
	spans := spansOf(*b)
	spans, from := splitAt(spans, start)
	spans, to := splitAt(spans, end)
	for i := from; i < to; i++ {
		switch f {
		case FormatBold:
			spans[i].Bold = set
		case FormatItalic:
			spans[i].Italic = set
		case FormatUnderline:
			spans[i].Underline = set
		}
	}
	setSpans(b, spans)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
