// Движок холста конструктора: владеет упорядоченной последовательностью
// блоков одного документа и набором операций редактирования.
//
// Основные возможности:
//   - Вставка, перестановка, дублирование и удаление блоков.
//   - Точечное обновление контента и стилей блока по идентификатору.
//   - Протокол drag-and-drop: вычисление точки вставки из геометрии указателя.
//   - Загрузка шаблона с полной заменой блоков и слиянием стилей документа.
//
// Все операции синхронные и атомарные: состояние принадлежит одной сессии
// редактирования, движок не запускает горутин. Обращения по отсутствующему
// идентификатору деградируют в no-op.
package editor

import (
	"github.com/gofrs/uuid"
)

type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
)

// State - живое состояние одной сессии редактирования документа.
type State struct {
	Blocks          []Block    `json:"blocks"`
	SelectedBlockId uuid.UUID  `json:"selected_block_id,omitempty"`
	BodyStyles      BodyStyles `json:"body_styles"`
	Device          Device     `json:"device"`
}

// NewState создает состояние с стартовой последовательностью блоков
// еженедельного письма и стилями документа по умолчанию.
func NewState() *State {
	return &State{
		Blocks: []Block{
			{
				Id:      uuid.Must(uuid.NewV4()),
				Type:    BlockHeading,
				Content: Content{Text: "Weekly Update"},
				Styles: Styles{
					TextAlign: AlignCenter,
					Color:     mustColor("#0f172a"),
					Padding:   &Spacing{Top: 20, Bottom: 10},
				},
			},
			{
				Id:      uuid.Must(uuid.NewV4()),
				Type:    BlockText,
				Content: Content{Text: "Dear Partner, thank you for your continued support. Here is what we have been up to this week."},
				Styles: Styles{
					TextAlign:  AlignLeft,
					Color:      mustColor("#475569"),
					Padding:    &Spacing{Top: 10, Right: 20, Bottom: 10, Left: 20},
					FontSize:   16,
					LineHeight: 1.6,
				},
			},
			{
				Id:      uuid.Must(uuid.NewV4()),
				Type:    BlockButton,
				Content: Content{Text: "Read Full Report", URL: "#"},
				Styles: Styles{
					TextAlign:      AlignCenter,
					Padding:        &Spacing{Top: 20, Right: 20, Bottom: 20, Left: 20},
					Background:     mustColor("#2563eb"),
					Color:          mustColor("#ffffff"),
					BorderRadius:   6,
					Display:        "inline-block",
					TextDecoration: "none",
					Margin:         &Spacing{Top: 20, Bottom: 20, AutoLeft: true, AutoRight: true},
				},
			},
		},
		BodyStyles: DefaultBodyStyles(),
		Device:     DeviceDesktop,
	}
}

// DefaultBodyStyles - стили документа нового письма.
func DefaultBodyStyles() BodyStyles {
	return BodyStyles{
		Background: mustColor("#ffffff"),
		FontFamily: "Inter, sans-serif",
		Width:      600,
		Color:      mustColor("#334155"),
		FontSize:   16,
		LineHeight: 1.5,
		LinkColor:  mustColor("#2563eb"),
	}
}

func (s *State) indexOf(id uuid.UUID) int {
	for i, b := range s.Blocks {
		if b.Id == id {
			return i
		}
	}
	return -1
}

// Block возвращает блок по идентификатору, либо nil.
func (s *State) Block(id uuid.UUID) *Block {
	if i := s.indexOf(id); i >= 0 {
		return &s.Blocks[i]
	}
	return nil
}

// SelectedBlock возвращает выделенный блок, либо nil если выделения нет.
func (s *State) SelectedBlock() *Block {
	if s.SelectedBlockId == uuid.Nil {
		return nil
	}
	return s.Block(s.SelectedBlockId)
}

// SelectBlock выделяет блок. Выделение отсутствующего блока снимает текущее.
func (s *State) SelectBlock(id uuid.UUID) {
	if id != uuid.Nil && s.indexOf(id) < 0 {
		id = uuid.Nil
	}
	s.SelectedBlockId = id
}

// SetDevice переключает предпросмотр на другой класс устройства.
// Влияет только на отображение, данные документа не меняются.
func (s *State) SetDevice(d Device) {
	switch d {
	case DeviceDesktop, DeviceTablet, DeviceMobile:
		s.Device = d
	}
}

func (s *State) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s.Blocks) {
		return len(s.Blocks)
	}
	return i
}

func (s *State) spliceIn(at int, blocks ...Block) {
	at = s.clampIndex(at)
	s.Blocks = append(s.Blocks[:at], append(append([]Block{}, blocks...), s.Blocks[at:]...)...)
}

// InsertNewBlock создает блок заданного типа со значениями по умолчанию,
// вставляет его в позицию atIndex и выделяет.
func (s *State) InsertNewBlock(t BlockType, atIndex int) *Block {
	if !t.Valid() {
		return nil
	}
	b := NewBlock(t)
	s.spliceIn(atIndex, b)
	s.SelectedBlockId = b.Id
	return s.Block(b.Id)
}

// InsertBlocks вставляет готовую последовательность блоков (например,
// развернутый пресет) в позицию atIndex и выделяет первый из них.
func (s *State) InsertBlocks(blocks []Block, atIndex int) {
	if len(blocks) == 0 {
		return
	}
	s.spliceIn(atIndex, blocks...)
	s.SelectedBlockId = blocks[0].Id
}

// ReorderBlock перемещает блок в позицию toIndex, выраженную относительно
// последовательности до удаления. Если блок двигается вперед за свою
// исходную позицию, целевой индекс уменьшается на единицу: удаление
// сдвигает последующие индексы вниз.
func (s *State) ReorderBlock(id uuid.UUID, toIndex int) {
	from := s.indexOf(id)
	if from < 0 {
		return
	}
	moved := s.Blocks[from]
	s.Blocks = append(s.Blocks[:from], s.Blocks[from+1:]...)

	if from < toIndex {
		toIndex--
	}
	s.spliceIn(toIndex, moved)
	s.SelectedBlockId = moved.Id
}

// DuplicateBlock глубоко клонирует блок, выдает копии новый идентификатор,
// вставляет ее сразу после оригинала и выделяет.
func (s *State) DuplicateBlock(id uuid.UUID) *Block {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	dup := s.Blocks[i].Clone()
	s.spliceIn(i+1, dup)
	s.SelectedBlockId = dup.Id
	return s.Block(dup.Id)
}

// UpdateBlockContent обновляет одно поле контента блока. Неизвестный ключ
// и отсутствующий блок игнорируются.
func (s *State) UpdateBlockContent(id uuid.UUID, key string, value string) {
	b := s.Block(id)
	if b == nil {
		return
	}
	switch key {
	case "text":
		b.Content.Text = value
	case "url":
		b.Content.URL = value
	case "alt":
		b.Content.Alt = value
	case "html":
		b.Content.HTML = value
	}
}

// UpdateBlockStyles сливает patch в стили блока. Порядок и число блоков
// не меняются.
func (s *State) UpdateBlockStyles(id uuid.UUID, patch Styles) {
	b := s.Block(id)
	if b == nil {
		return
	}
	b.Styles.Merge(patch)
}

// DeleteBlock удаляет блок. Если он был выделен, выделение снимается.
func (s *State) DeleteBlock(id uuid.UUID) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.Blocks = append(s.Blocks[:i], s.Blocks[i+1:]...)
	if s.SelectedBlockId == id {
		s.SelectedBlockId = uuid.Nil
	}
}

// LoadTemplate полностью заменяет блоки документа и сливает bodyStyles
// шаблона в текущие. Подтверждение у пользователя обязана запросить
// вызывающая сторона: операция необратима.
func (s *State) LoadTemplate(blocks []Block, bodyStyles BodyStyles) {
	s.Blocks = blocks
	s.BodyStyles.Merge(bodyStyles)
	s.SelectedBlockId = uuid.Nil
}

// InsertMergeTag дописывает тег персонализации к текстовому контенту
// выделенного блока через пробел. Без выделения или для блока без
// текстового поля - no-op.
func (s *State) InsertMergeTag(tag string) {
	b := s.SelectedBlock()
	if b == nil {
		return
	}
	switch b.Type {
	case BlockText, BlockHeading, BlockButton:
	default:
		return
	}
	if b.Content.Text == "" {
		b.Content.Text = tag
		return
	}
	b.Content.Text += " " + tag
}

// Snapshot возвращает сериализуемый снимок (blocks, bodyStyles) для внешних
// коллабораторов сохранения и экспорта.
func (s *State) Snapshot() ([]Block, BodyStyles) {
	blocks := make([]Block, len(s.Blocks))
	for i, b := range s.Blocks {
		blocks[i] = b
		blocks[i].Styles = b.Styles.Clone()
	}
	return blocks, s.BodyStyles.Clone()
}
