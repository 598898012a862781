package library

import (
	"github.com/givehope/givehope.go/internal/givehope/editor"
)

// buildPresets собирает встроенный каталог пресетов. Контент - готовые
// фрагменты NGO-рассылок GiveHope.
func buildPresets() []*Preset {
	return []*Preset{
		{
			Id:    "header_logo",
			Label: "Logo Header",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockImage,
					Content: editor.Content{URL: "https://via.placeholder.com/150x50?text=GIVEHOPE", Alt: "Logo"},
					Styles:  styles(map[string]string{"width": "150px", "margin": "20px auto", "display": "block"}),
				},
				{
					Type:   editor.BlockDivider,
					Styles: styles(map[string]string{"margin": "0", "borderTop": "1px solid #e2e8f0", "padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "hero",
			Label: "Mission Hero",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockImage,
					Content: editor.Content{URL: "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=800&auto=format&fit=crop", Alt: "Hero Image"},
					Styles:  styles(map[string]string{"width": "100%", "borderRadius": "8px", "marginBottom": "20px", "display": "block"}),
				},
				{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "Restoring Hope Together"},
					Styles:  styles(map[string]string{"fontSize": "32px", "fontWeight": "800", "color": "#1e293b", "textAlign": "center", "marginBottom": "12px", "lineHeight": "1.2"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Your partnership enables us to provide clean water, education, and medical relief to those who need it most. Thank you for standing with us."},
					Styles:  styles(map[string]string{"fontSize": "16px", "color": "#475569", "textAlign": "center", "lineHeight": "1.6", "marginBottom": "24px"}),
				},
				{
					Type:    editor.BlockButton,
					Content: editor.Content{Text: "Support the Mission", URL: "#"},
					Styles:  styles(map[string]string{"backgroundColor": "#2563eb", "color": "#ffffff", "padding": "14px 28px", "borderRadius": "6px", "display": "inline-block", "fontWeight": "600", "textDecoration": "none", "margin": "0 auto", "textAlign": "center"}),
				},
			},
		},
		{
			Id:    "director_note",
			Label: "Director Note",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background-color: #f8fafc; padding: 30px; border-radius: 8px; border: 1px solid #e2e8f0;">
  <div style="display: flex; align-items: flex-start; gap: 20px;">
    <img src="https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=150&h=150&fit=crop" style="width: 80px; height: 80px; border-radius: 50%; object-fit: cover; border: 3px solid #fff; box-shadow: 0 2px 4px rgba(0,0,0,0.1);" alt="Director" />
    <div>
      <h3 style="margin: 0 0 10px; font-family: serif; font-size: 20px; color: #1e293b;">A Note from Sarah</h3>
      <p style="margin: 0 0 15px; font-size: 15px; line-height: 1.6; color: #475569;">"I wanted to personally thank you for your generosity this month. Because of you, we were able to launch the new mobile clinic three weeks ahead of schedule. The impact is already visible on the faces of the families we serve."</p>
      <p style="margin: 5px 0 0; font-size: 12px; color: #94a3b8; font-weight: bold; text-transform: uppercase; letter-spacing: 1px;">Executive Director</p>
    </div>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "photo_mosaic",
			Label: "Photo Mosaic",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<table width="100%" cellpadding="0" cellspacing="0" border="0">
  <tr>
    <td width="50%" style="padding: 5px;"><img src="https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=400&h=300&fit=crop" style="width: 100%; border-radius: 6px; display: block;" /></td>
    <td width="50%" style="padding: 5px;"><img src="https://images.unsplash.com/photo-1594708767771-a7502209ff51?w=400&h=300&fit=crop" style="width: 100%; border-radius: 6px; display: block;" /></td>
  </tr>
  <tr>
    <td colspan="2" style="padding: 5px;">
      <img src="https://images.unsplash.com/photo-1531206715517-5c0ba140b2b8?w=800&h=400&fit=crop" style="width: 100%; border-radius: 6px; display: block;" />
      <p style="text-align: center; font-size: 13px; color: #64748b; margin-top: 8px; font-style: italic;">Field operations in Kenya, October 2024</p>
    </td>
  </tr>
</table>`},
					Styles: styles(map[string]string{"padding": "15px 0"}),
				},
			},
		},
		{
			Id:    "story_feature",
			Label: "Feature Story",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="display: flex; gap: 20px; align-items: center; flex-wrap: wrap;">
  <div style="flex: 1; min-width: 250px;"><img src="https://images.unsplash.com/photo-1594708767771-a7502209ff51?w=600&auto=format&fit=crop" style="width: 100%; border-radius: 8px; display: block;" alt="Story" /></div>
  <div style="flex: 1; min-width: 250px;">
    <h3 style="margin: 0 0 10px 0; font-size: 20px; color: #1e293b; font-weight: bold;">A New Beginning</h3>
    <p style="margin: 0 0 15px 0; color: #475569; line-height: 1.6;">When we first met Sarah, she walked 5 miles daily for water. Today, thanks to the new well, she's in school and dreaming of becoming a doctor.</p>
    <a href="#" style="color: #2563eb; font-weight: 600; text-decoration: none;">Read her full story &rarr;</a>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "20px"}),
				},
			},
		},
		{
			Id:    "financials",
			Label: "Financials",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="border: 1px solid #e2e8f0; border-radius: 8px; padding: 20px;">
  <h4 style="margin: 0 0 15px; font-size: 16px; font-weight: bold; color: #0f172a; text-align: center;">Where Your Dollar Goes</h4>
  <div style="margin-bottom: 12px;">
    <div style="display: flex; justify-content: space-between; font-size: 12px; margin-bottom: 4px; font-weight: 600; color: #334155;"><span>Program Services</span><span>85%</span></div>
    <div style="height: 8px; background: #e2e8f0; border-radius: 4px; overflow: hidden;"><div style="width: 85%; background: #10b981; height: 100%;"></div></div>
  </div>
  <div style="margin-bottom: 12px;">
    <div style="display: flex; justify-content: space-between; font-size: 12px; margin-bottom: 4px; font-weight: 600; color: #334155;"><span>Fundraising</span><span>10%</span></div>
    <div style="height: 8px; background: #e2e8f0; border-radius: 4px; overflow: hidden;"><div style="width: 10%; background: #64748b; height: 100%;"></div></div>
  </div>
  <div>
    <div style="display: flex; justify-content: space-between; font-size: 12px; margin-bottom: 4px; font-weight: 600; color: #334155;"><span>Admin</span><span>5%</span></div>
    <div style="height: 8px; background: #e2e8f0; border-radius: 4px; overflow: hidden;"><div style="width: 5%; background: #94a3b8; height: 100%;"></div></div>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 20px"}),
				},
			},
		},
		{
			Id:    "donation_grid",
			Label: "Donation Tiers",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "Choose Your Impact"},
					Styles:  styles(map[string]string{"textAlign": "center", "fontSize": "20px", "fontWeight": "bold", "color": "#1e293b", "marginBottom": "5px"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Select an amount to give today."},
					Styles:  styles(map[string]string{"textAlign": "center", "color": "#64748b", "fontSize": "14px", "marginBottom": "20px"}),
				},
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<table width="100%" cellpadding="0" cellspacing="0" border="0">
  <tr>
    <td width="33%" style="padding: 5px;"><a href="#" style="display: block; background: #f1f5f9; color: #0f172a; text-decoration: none; padding: 15px 10px; border-radius: 6px; text-align: center; font-weight: bold; border: 1px solid #cbd5e1;">$50</a></td>
    <td width="33%" style="padding: 5px;"><a href="#" style="display: block; background: #2563eb; color: #ffffff; text-decoration: none; padding: 15px 10px; border-radius: 6px; text-align: center; font-weight: bold; border: 1px solid #2563eb;">$100</a></td>
    <td width="33%" style="padding: 5px;"><a href="#" style="display: block; background: #f1f5f9; color: #0f172a; text-decoration: none; padding: 15px 10px; border-radius: 6px; text-align: center; font-weight: bold; border: 1px solid #cbd5e1;">$250</a></td>
  </tr>
</table>`},
					Styles: styles(map[string]string{"padding": "0 10px 20px"}),
				},
			},
		},
		{
			Id:    "scan_give",
			Label: "Scan to Give",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="text-align: center; padding: 30px; background-color: #0f172a; color: white; border-radius: 12px;">
  <h3 style="margin: 0 0 5px; font-size: 22px; font-weight: bold;">Scan to Give</h3>
  <p style="margin: 0 0 20px; font-size: 14px; opacity: 0.8;">Use your phone camera to donate instantly.</p>
  <img src="https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=https://givehope.org/donate&color=000000&bgcolor=ffffff" style="display: block; margin: 0 auto; width: 120px; height: 120px; border: 4px solid white; border-radius: 8px;" alt="QR Code" />
  <p style="margin: 20px 0 0; font-size: 12px; letter-spacing: 1px; text-transform: uppercase; font-weight: bold; color: #94a3b8;">Secure &amp; Fast Checkout</p>
</div>`},
					Styles: styles(map[string]string{"padding": "20px"}),
				},
			},
		},
		{
			Id:    "progress_bar",
			Label: "Campaign Goal",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 12px; padding: 20px;">
  <div style="display: flex; justify-content: space-between; margin-bottom: 8px; font-size: 14px; font-weight: bold; color: #334155;"><span>Raised: $45,000</span><span>Goal: $50,000</span></div>
  <div style="background: #e2e8f0; height: 10px; border-radius: 5px; overflow: hidden;"><div style="background: #10b981; width: 90%; height: 100%;"></div></div>
  <p style="margin: 10px 0 0 0; text-align: center; font-size: 13px; color: #64748b;">We are only <strong>$5,000</strong> away from fully funding the clinic!</p>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 20px"}),
				},
			},
		},
		{
			Id:    "timeline",
			Label: "Timeline",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="padding: 20px;">
  <h3 style="text-align: center; font-size: 18px; color: #0f172a; margin-bottom: 25px;">Project Roadmap</h3>
  <div style="border-left: 2px solid #cbd5e1; margin-left: 20px; padding-left: 25px; padding-bottom: 25px; position: relative;">
    <div style="position: absolute; left: -7px; top: 0; width: 12px; height: 12px; border-radius: 50%; background: #10b981; border: 2px solid #fff;"></div>
    <h4 style="margin: 0; font-size: 15px; color: #1e293b;">Phase 1: Groundbreaking</h4>
    <p style="margin: 5px 0 0; font-size: 13px; color: #64748b;">Completed in January. Land cleared and foundation laid.</p>
  </div>
  <div style="border-left: 2px solid #cbd5e1; margin-left: 20px; padding-left: 25px; padding-bottom: 25px; position: relative;">
    <div style="position: absolute; left: -7px; top: 0; width: 12px; height: 12px; border-radius: 50%; background: #3b82f6; border: 2px solid #fff;"></div>
    <h4 style="margin: 0; font-size: 15px; color: #1e293b;">Phase 2: Construction</h4>
    <p style="margin: 5px 0 0; font-size: 13px; color: #64748b;"><strong>Current Status.</strong> Walls are up, roof installation begins next week.</p>
  </div>
  <div style="border-left: 2px solid #e2e8f0; margin-left: 20px; padding-left: 25px; position: relative;">
    <div style="position: absolute; left: -7px; top: 0; width: 12px; height: 12px; border-radius: 50%; background: #cbd5e1; border: 2px solid #fff;"></div>
    <h4 style="margin: 0; font-size: 15px; color: #94a3b8;">Phase 3: Opening</h4>
    <p style="margin: 5px 0 0; font-size: 13px; color: #94a3b8;">Scheduled for June. Staff hiring and community launch.</p>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "impact_row",
			Label: "Impact Row",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<table width="100%" cellpadding="0" cellspacing="0" border="0">
  <tr>
    <td width="33%" valign="top" style="text-align: center; padding: 10px;">
      <img src="https://cdn-icons-png.flaticon.com/512/2936/2936886.png" width="40" height="40" alt="Water" style="display: block; margin: 0 auto 10px;" />
      <h4 style="margin: 0; font-size: 16px; color: #1e293b;">Clean Water</h4>
      <p style="margin: 5px 0 0; font-size: 12px; color: #64748b;">500 Wells Built</p>
    </td>
    <td width="33%" valign="top" style="text-align: center; padding: 10px;">
      <img src="https://cdn-icons-png.flaticon.com/512/2965/2965300.png" width="40" height="40" alt="Food" style="display: block; margin: 0 auto 10px;" />
      <h4 style="margin: 0; font-size: 16px; color: #1e293b;">Meals</h4>
      <p style="margin: 5px 0 0; font-size: 12px; color: #64748b;">1M+ Served</p>
    </td>
    <td width="33%" valign="top" style="text-align: center; padding: 10px;">
      <img src="https://cdn-icons-png.flaticon.com/512/2382/2382461.png" width="40" height="40" alt="Health" style="display: block; margin: 0 auto 10px;" />
      <h4 style="margin: 0; font-size: 16px; color: #1e293b;">Medical</h4>
      <p style="margin: 5px 0 0; font-size: 12px; color: #64748b;">10k Treated</p>
    </td>
  </tr>
</table>`},
					Styles: styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "sponsorship_card",
			Label: "Sponsorship",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="border: 1px solid #e2e8f0; border-radius: 12px; overflow: hidden; max-width: 320px; margin: 0 auto; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);">
  <div style="background-color: #f1f5f9; height: 160px; overflow: hidden; position: relative;">
    <img src="https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=400&fit=crop" style="width: 100%; height: 100%; object-fit: cover;" />
    <div style="position: absolute; bottom: 10px; left: 10px; background: rgba(0,0,0,0.7); color: white; padding: 4px 8px; border-radius: 4px; font-size: 11px; font-weight: bold; text-transform: uppercase;">Needs Sponsor</div>
  </div>
  <div style="padding: 20px; background: white; text-align: center;">
    <h3 style="margin: 0; font-size: 18px; color: #0f172a;">Mateo, 7</h3>
    <p style="margin: 5px 0 15px; color: #64748b; font-size: 14px;">&#128205; Guatemala City</p>
    <p style="font-size: 13px; line-height: 1.5; color: #334155; margin-bottom: 20px;">Mateo loves soccer and wants to be a teacher. Sponsorship covers school fees, books, and daily meals.</p>
    <a href="#" style="display: block; background: #2563eb; color: white; text-decoration: none; padding: 12px; border-radius: 6px; font-weight: bold; font-size: 14px;">Sponsor for $35/mo</a>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "beneficiary",
			Label: "Beneficiary",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="text-align: center; padding: 20px;">
  <img src="https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=200&h=200&fit=crop" style="width: 100px; height: 100px; border-radius: 50%; object-fit: cover; border: 4px solid #fff; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);" alt="Beneficiary" />
  <h3 style="margin: 15px 0 5px 0; color: #0f172a; font-size: 18px;">Meet David</h3>
  <p style="margin: 0 auto 15px; max-width: 400px; font-style: italic; color: #475569; font-size: 15px;">"The vocational training I received gave me the skills to open my own shop. Now I can support my entire family."</p>
  <a href="#" style="font-size: 12px; text-transform: uppercase; letter-spacing: 1px; font-weight: bold; color: #2563eb; text-decoration: none;">Read David's Story</a>
</div>`},
					Styles: styles(map[string]string{"backgroundColor": "#f8fafc", "margin": "20px 0", "borderRadius": "8px"}),
				},
			},
		},
		{
			Id:    "download",
			Label: "Download",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background-color: #f0f9ff; border: 1px solid #bae6fd; border-radius: 8px; padding: 20px; display: flex; align-items: center; gap: 15px;">
  <div style="background: white; border: 1px solid #e0f2fe; width: 50px; height: 70px; border-radius: 4px; display: flex; align-items: center; justify-content: center; box-shadow: 0 2px 4px rgba(0,0,0,0.05);"><span style="font-size: 24px;">&#128196;</span></div>
  <div style="flex: 1;">
    <h4 style="margin: 0 0 4px; color: #0c4a6e; font-size: 15px;">2024 Impact Report</h4>
    <p style="margin: 0 0 10px; font-size: 12px; color: #0284c7;">Read about what we've accomplished together.</p>
    <a href="#" style="font-size: 12px; font-weight: bold; text-decoration: underline; color: #0284c7;">Download PDF (4.5 MB)</a>
  </div>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 20px"}),
				},
			},
		},
		{
			Id:    "urgent",
			Label: "Urgent Appeal",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background-color: #fef2f2; border: 1px solid #fee2e2; border-radius: 8px; padding: 24px; text-align: center;"><h3 style="color: #991b1b; margin-top: 0; font-size: 20px; font-weight: bold;">URGENT NEED</h3><p style="color: #7f1d1d; margin-bottom: 20px;">We need to raise $5,000 by midnight to secure the matching grant.</p><a href="#" style="background-color: #dc2626; color: white; padding: 10px 20px; text-decoration: none; border-radius: 4px; font-weight: bold; font-size: 14px; display: inline-block;">GIVE NOW</a></div>`},
					Styles:  styles(map[string]string{"padding": "10px"}),
				},
			},
		},
		{
			Id:    "info_box",
			Label: "Info Callout",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background-color: #eff6ff; border-left: 4px solid #3b82f6; padding: 15px; border-radius: 4px;">
  <p style="margin: 0; color: #1e3a8a; font-size: 14px; line-height: 1.5;"><strong>Did you know?</strong> 100% of your donation to the clean water fund goes directly to project costs. We cover our admin fees separately.</p>
</div>`},
					Styles: styles(map[string]string{"padding": "15px 20px"}),
				},
			},
		},
		{
			Id:    "membership",
			Label: "The Circle",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="background-color: #1e293b; color: white; padding: 30px; text-align: center; border-radius: 12px; background-image: radial-gradient(circle at 1px 1px, rgba(255,255,255,0.1) 1px, transparent 0); background-size: 20px 20px;">
  <h3 style="margin: 0 0 10px; font-size: 24px; letter-spacing: -0.5px;">Join The Circle</h3>
  <p style="margin: 0 auto 25px; max-width: 400px; font-size: 15px; opacity: 0.9; line-height: 1.5;">Become a monthly partner and get exclusive field updates, a welcome kit, and invitations to our annual gala.</p>
  <a href="#" style="background: #fbbf24; color: #451a03; padding: 14px 28px; border-radius: 50px; text-decoration: none; font-weight: bold; font-size: 14px; display: inline-block;">Become a Partner</a>
</div>`},
					Styles: styles(map[string]string{"padding": "20px 0"}),
				},
			},
		},
		{
			Id:    "quote",
			Label: "Testimonial",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: `"Because of this program, my children can finally go to school instead of walking miles for water. You have given us our future back."`},
					Styles:  styles(map[string]string{"fontSize": "18px", "color": "#334155", "fontStyle": "italic", "textAlign": "center", "lineHeight": "1.6", "borderLeft": "4px solid #cbd5e1", "paddingLeft": "20px", "margin": "20px 0"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "- Sarah, Community Leader"},
					Styles:  styles(map[string]string{"fontSize": "14px", "color": "#64748b", "fontWeight": "bold", "textAlign": "right", "marginTop": "8px"}),
				},
			},
		},
		{
			Id:    "event",
			Label: "Event Invite",
			Blocks: []editor.BlockDef{
				{
					Type:   editor.BlockDivider,
					Styles: styles(map[string]string{"margin": "20px 0", "borderTop": "1px solid #e2e8f0"}),
				},
				{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "Annual Charity Gala"},
					Styles:  styles(map[string]string{"fontSize": "24px", "fontWeight": "bold", "color": "#0f172a", "textAlign": "center"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Join us for an evening of celebration and vision."},
					Styles:  styles(map[string]string{"fontSize": "16px", "color": "#475569", "textAlign": "center", "margin": "8px 0 16px"}),
				},
				{
					Type:    editor.BlockButton,
					Content: editor.Content{Text: "RSVP Today", URL: "#"},
					Styles:  styles(map[string]string{"backgroundColor": "#0f172a", "color": "#ffffff", "padding": "12px 24px", "borderRadius": "4px", "display": "inline-block", "fontWeight": "500", "fontSize": "14px", "margin": "0 auto"}),
				},
				{
					Type:   editor.BlockDivider,
					Styles: styles(map[string]string{"margin": "20px 0", "borderTop": "1px solid #e2e8f0"}),
				},
			},
		},
		{
			Id:    "video",
			Label: "Video Story",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockImage,
					Content: editor.Content{URL: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800&auto=format&fit=crop", Alt: "Video Thumbnail"},
					Styles:  styles(map[string]string{"width": "100%", "borderRadius": "8px", "marginBottom": "10px", "display": "block"}),
				},
				{
					Type:    editor.BlockHeading,
					Content: editor.Content{Text: "Watch: The Journey Home"},
					Styles:  styles(map[string]string{"fontSize": "20px", "fontWeight": "bold", "color": "#1e293b", "marginBottom": "4px"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "See the impact of your latest contribution in this short 2-minute update from the field."},
					Styles:  styles(map[string]string{"fontSize": "14px", "color": "#64748b", "lineHeight": "1.5"}),
				},
			},
		},
		{
			Id:    "social_follow",
			Label: "Social Links",
			Blocks: []editor.BlockDef{
				{
					Type: editor.BlockHTML,
					Content: editor.Content{HTML: `<div style="text-align: center; padding: 10px;">
  <p style="font-size: 12px; color: #64748b; margin-bottom: 10px; font-weight: bold; text-transform: uppercase;">Follow Our Journey</p>
  <a href="#" style="display: inline-block; margin: 0 5px; width: 32px; height: 32px; background: #e2e8f0; border-radius: 50%; line-height: 32px; color: #1e293b; text-decoration: none;">FB</a>
  <a href="#" style="display: inline-block; margin: 0 5px; width: 32px; height: 32px; background: #e2e8f0; border-radius: 50%; line-height: 32px; color: #1e293b; text-decoration: none;">IG</a>
  <a href="#" style="display: inline-block; margin: 0 5px; width: 32px; height: 32px; background: #e2e8f0; border-radius: 50%; line-height: 32px; color: #1e293b; text-decoration: none;">TW</a>
  <a href="#" style="display: inline-block; margin: 0 5px; width: 32px; height: 32px; background: #e2e8f0; border-radius: 50%; line-height: 32px; color: #1e293b; text-decoration: none;">YT</a>
</div>`},
					Styles: styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
		{
			Id:    "footer",
			Label: "Footer",
			Blocks: []editor.BlockDef{
				{
					Type:   editor.BlockDivider,
					Styles: styles(map[string]string{"margin": "30px 0 20px", "borderTop": "1px solid #e2e8f0"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "GiveHope Humanitarian • 123 Mission Way, San Francisco, CA"},
					Styles:  styles(map[string]string{"fontSize": "12px", "color": "#94a3b8", "textAlign": "center", "marginBottom": "4px"}),
				},
				{
					Type:    editor.BlockText,
					Content: editor.Content{Text: "Unsubscribe  |  Privacy Policy"},
					Styles:  styles(map[string]string{"fontSize": "12px", "color": "#94a3b8", "textAlign": "center", "textDecoration": "underline"}),
				},
			},
		},
		{
			Id:    "signature",
			Label: "Signature",
			Blocks: []editor.BlockDef{
				{
					Type:    editor.BlockHTML,
					Content: editor.Content{HTML: `<table style="margin-top: 20px;"><tr><td style="vertical-align: middle; padding-right: 15px;"><img src="https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&h=100&fit=crop" style="width: 50px; height: 50px; border-radius: 50%; display: block;" /></td><td style="vertical-align: middle;"><p style="margin: 0; font-weight: bold; color: #0f172a; font-size: 16px;">The Miller Family</p><p style="margin: 0; font-size: 13px; color: #64748b;">Field Partners, Thailand</p></td></tr></table>`},
					Styles:  styles(map[string]string{"padding": "10px 0"}),
				},
			},
		},
	}
}
