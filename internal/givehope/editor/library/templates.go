package library

import (
	"github.com/givehope/givehope.go/internal/givehope/editor"
)

// buildTemplates собирает каталог шаблонов. Шаблоны компонуются из уже
// зарегистрированных пресетов: конкатенация происходит здесь, один раз,
// при конструировании библиотеки.
func buildTemplates(l *Library) []*Template {
	concat := func(parts ...[]editor.BlockDef) []editor.BlockDef {
		var res []editor.BlockDef
		for _, p := range parts {
			res = append(res, p...)
		}
		return res
	}
	one := func(d editor.BlockDef) []editor.BlockDef { return []editor.BlockDef{d} }

	bodyColor := func(raw string) *editor.Color {
		c, err := editor.ParseColor(raw)
		if err != nil {
			panic(err)
		}
		return &c
	}

	return []*Template{
		{
			Id:          "newsletter_monthly",
			Name:        "The Visionary",
			Description: "Monthly impact newsletter with stats and stories.",
			BodyStyles: editor.BodyStyles{
				Background: bodyColor("#f8fafc"),
				FontFamily: "Inter, sans-serif",
				Width:      600,
				Color:      bodyColor("#334155"),
				FontSize:   16,
				LineHeight: 1.5,
			},
			Blocks: concat(
				l.presetBlocks("header_logo"),
				l.presetBlocks("hero"),
				one(editor.BlockDef{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "October Vision Update"},
					Styles:  styles(map[string]string{"fontSize": "24px", "fontWeight": "bold", "textAlign": "center", "color": "#0f172a", "margin": "20px 0 10px"}),
				}),
				one(editor.BlockDef{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Hi {{first_name}}, this month has been nothing short of miraculous. Thanks to your support, we broke ground on the new clinic."},
					Styles:  styles(map[string]string{"fontSize": "16px", "color": "#475569", "lineHeight": "1.6", "padding": "0 20px"}),
				}),
				l.presetBlocks("impact_row"),
				l.presetBlocks("story_feature"),
				l.presetBlocks("donation_grid"),
				l.presetBlocks("footer"),
			),
		},
		{
			Id:          "crisis_appeal",
			Name:        "Crisis Response",
			Description: "Urgent appeal layout for emergencies.",
			BodyStyles: editor.BodyStyles{
				Background: bodyColor("#ffffff"),
				FontFamily: "Arial, sans-serif",
				Width:      600,
				Color:      bodyColor("#1e293b"),
				FontSize:   16,
				LineHeight: 1.5,
			},
			Blocks: concat(
				l.presetBlocks("header_logo"),
				one(editor.BlockDef{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "URGENT: Flood Response"},
					Styles:  styles(map[string]string{"fontSize": "28px", "fontWeight": "bold", "textAlign": "center", "color": "#dc2626", "margin": "20px 0"}),
				}),
				one(editor.BlockDef{
					Type:    editor.BlockImage,
					Content: editor.Content{URL: "https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800&fit=crop", Alt: "Disaster"},
					Styles:  styles(map[string]string{"width": "100%", "borderRadius": "4px", "marginBottom": "15px"}),
				}),
				one(editor.BlockDef{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Dear {{first_name}},\n\nHeavy rains have displaced thousands. We are on the ground providing emergency kits, but supplies are running low."},
					Styles:  styles(map[string]string{"fontSize": "18px", "color": "#334155", "lineHeight": "1.6", "padding": "0 20px"}),
				}),
				l.presetBlocks("urgent"),
				l.presetBlocks("donation_grid"),
				l.presetBlocks("footer"),
			),
		},
		{
			Id:          "annual_report",
			Name:        "Annual Report",
			Description: "Year-end summary with financials and transparency.",
			BodyStyles: editor.BodyStyles{
				Background: bodyColor("#f1f5f9"),
				FontFamily: "'Georgia', serif",
				Width:      640,
				Color:      bodyColor("#334155"),
				FontSize:   16,
				LineHeight: 1.6,
			},
			Blocks: concat(
				l.presetBlocks("header_logo"),
				one(editor.BlockDef{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "2023 Year in Review"},
					Styles:  styles(map[string]string{"fontSize": "32px", "fontWeight": "bold", "textAlign": "center", "color": "#0f172a", "margin": "30px 0 10px", "fontFamily": "'Georgia', serif"}),
				}),
				l.presetBlocks("financials"),
				l.presetBlocks("timeline"),
				l.presetBlocks("quote"),
				l.presetBlocks("download"),
				l.presetBlocks("signature"),
				l.presetBlocks("footer"),
			),
		},
		{
			Id:          "welcome_series",
			Name:        "Welcome Series",
			Description: "Onboarding email for new donors.",
			BodyStyles: editor.BodyStyles{
				Background: bodyColor("#ffffff"),
				FontFamily: "Inter, sans-serif",
				Width:      600,
				Color:      bodyColor("#334155"),
				FontSize:   16,
				LineHeight: 1.5,
			},
			Blocks: concat(
				l.presetBlocks("header_logo"),
				one(editor.BlockDef{
					Type:    editor.BlockImage,
					Content: editor.Content{URL: "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=800&fit=crop", Alt: "Welcome"},
					Styles:  styles(map[string]string{"width": "100%", "borderRadius": "8px", "marginBottom": "20px"}),
				}),
				one(editor.BlockDef{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "Welcome to the Family!"},
					Styles:  styles(map[string]string{"fontSize": "26px", "fontWeight": "bold", "textAlign": "center", "color": "#0f172a", "margin": "10px 0"}),
				}),
				one(editor.BlockDef{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Hi {{first_name}},\n\nThank you for joining us. You are now part of a global movement bringing hope to the hopeless. Here is what you can expect from us."},
					Styles:  styles(map[string]string{"fontSize": "16px", "color": "#475569", "textAlign": "center", "lineHeight": "1.6", "padding": "0 20px 20px"}),
				}),
				l.presetBlocks("video"),
				l.presetBlocks("social_follow"),
				one(editor.BlockDef{
					Type:    editor.BlockButton,
					Content: editor.Content{Text: "Visit Donor Portal", URL: "#"},
					Styles:  styles(map[string]string{"backgroundColor": "#0f172a", "color": "#ffffff", "padding": "14px 28px", "borderRadius": "50px", "display": "inline-block", "fontWeight": "600", "textDecoration": "none", "margin": "20px auto", "textAlign": "center"}),
				}),
				l.presetBlocks("footer"),
			),
		},
	}
}
