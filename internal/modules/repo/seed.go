package repo

import "github.com/cindral-studio/cindral-api/internal/modules/model"

// Seed returns the dataset installed on first run, matching the content the
// marketing site ships with.
func Seed() *Dataset {
	d := &Dataset{
		Divisions: []model.Division{
			{ID: "labs", Type: "Labs", Title: "Cindral Labs", Tagline: "Inventing tomorrow's interfaces", Description: "Applied R&D across AI, spatial computing, and data products.", IconName: "FlaskConical", Color: "text-cyan-300", ThemeColor: "#22d3ee"},
			{ID: "studios", Type: "Studios", Title: "Cindral Studios", Tagline: "Design and engineering for digital products", Description: "Full-stack product teams for web and mobile builds.", IconName: "PenTool", Color: "text-violet-300", ThemeColor: "#a78bfa"},
			{ID: "immersive", Type: "Immersive", Title: "Cindral Immersive", Tagline: "Worlds you can step into", Description: "AR/VR experiences, virtual tours, and interactive installations.", IconName: "Glasses", Color: "text-emerald-300", ThemeColor: "#34d399"},
			{ID: "entertainment", Type: "Entertainment", Title: "Cindral Entertainment", Tagline: "Play, stories, and live ops", Description: "Games and seasonal live operations for entertainment brands.", IconName: "Gamepad2", Color: "text-rose-300", ThemeColor: "#fb7185"},
		},
		Projects: []model.Project{
			{ID: "p1", DivisionID: "labs", Title: "Project Neural Bloom", Summary: "Generative visual identity engine.", Content: "", Images: []string{}, Year: "2024"},
			{ID: "p2", DivisionID: "studios", Title: "FinTech Dashboard Redesign", Client: "AlphaBank Global", Summary: "Trading portal revamp with latency SLAs.", Content: "", Images: []string{}, Year: "2024"},
			{ID: "p3", DivisionID: "immersive", Title: "Virtual Museum Tour", Client: "National History Org", Summary: "Accessibility-first VR museum tour.", Content: "", Images: []string{}, Year: "2024"},
			{ID: "p4", DivisionID: "entertainment", Title: "Neon Odyssey", Summary: "Seasonal live operations for Neon Odyssey.", Content: "", Images: []string{}, Year: "2023"},
		},
		Team: []model.TeamMember{
			{ID: "t1", Name: "Sarah Chen", Role: "Engineering Director", Bio: "Leads the Studios engineering group.", ProjectIDs: []string{"p2"}, CSRActivities: []string{}, Skills: []string{"Go", "Distributed systems"}, Interests: []string{}},
			{ID: "t2", Name: "Marcus Thorne", Role: "Delivery Lead", Bio: "Keeps client engagements on schedule.", ProjectIDs: []string{"p2"}, CSRActivities: []string{}, Skills: []string{"Delivery", "Compliance"}, Interests: []string{}},
			{ID: "t3", Name: "Elena Rodriguez", Role: "Immersive Division Lead", Bio: "Pushes the boundaries of AR and VR.", ProjectIDs: []string{"p3"}, CSRActivities: []string{}, Skills: []string{"Unity", "Accessibility"}, Interests: []string{}},
			{ID: "t5", Name: "Aisha Gupta", Role: "Lead UI/UX Designer", Bio: "Design systems and product flows.", ProjectIDs: []string{"p2"}, CSRActivities: []string{}, Skills: []string{"Figma", "Design systems"}, Interests: []string{}},
			{ID: "t6", Name: "James Wilson", Role: "Senior Backend Engineer", Bio: "Performance and platform work.", ProjectIDs: []string{"p2"}, CSRActivities: []string{}, Skills: []string{"Go", "Postgres"}, Interests: []string{}},
			{ID: "t7", Name: "Yuki Tanaka", Role: "3D Artist", Bio: "Scenes, lighting, and artifact scans.", ProjectIDs: []string{"p3"}, CSRActivities: []string{}, Skills: []string{"Blender"}, Interests: []string{}},
		},
		ClientProjects: []model.ClientProject{
			{
				ID: "cp1", ProjectID: "p2", ClientName: "AlphaBank Global", Name: "AlphaBank Trading Portal",
				Summary: "Enterprise-grade trading portal revamp with latency SLAs.",
				Status:  model.StatusOnTrack, Health: model.HealthGreen,
				BudgetUsed: 64, StartDate: "2024-02-05", EndDate: "2024-08-01",
				NextMilestone: "Beta handoff on Jun 28",
				Team:          []string{"t1", "t2", "t5", "t6"},
				Resources: []model.ResourceLink{
					{ID: "res-cp1-1", Label: "Figma design system", URL: "https://www.figma.com/file/alpha-bank-system", Type: "design", Description: "Components, tokens, and signed-off flows."},
					{ID: "res-cp1-2", Label: "Staging dashboard", URL: "https://alpha.cindral.app", Type: "prototype", Description: "Protected staging build for UAT."},
				},
				Tasks: []model.ClientProjectTask{
					{ID: "task-cp1-1", Title: "Performance profiling on heatmaps", Status: model.TaskInProgress, Owner: "James Wilson", DueDate: "2024-06-15", Highlight: "Target p95 < 180ms"},
					{ID: "task-cp1-2", Title: "Copy + compliance review", Status: model.TaskDone, Owner: "Aisha Gupta", DueDate: "2024-05-30"},
					{ID: "task-cp1-3", Title: "Pen-test remediation batch 1", Status: model.TaskTodo, Owner: "Sarah Chen", DueDate: "2024-06-10", Highlight: "Awaiting VPN allowlist for vendor"},
				},
				Timeline: []model.TimelineItem{
					{ID: "tl-cp1-1", Label: "Discovery + Research", Date: "2024-02-29", Status: "complete", Description: "Stakeholder workshops & audits."},
					{ID: "tl-cp1-2", Label: "Design Sprint", Date: "2024-04-05", Status: "complete", Description: "IA, flows, interaction prototypes."},
					{ID: "tl-cp1-3", Label: "Beta Build", Date: "2024-06-28", Status: "active", Description: "Feature complete beta to client UAT."},
					{ID: "tl-cp1-4", Label: "Launch", Date: "2024-08-01", Status: "upcoming", Description: "Production cutover + training."},
				},
				Updates: []model.ClientUpdate{
					{ID: "upd-cp1-1", Title: "Latency down 18%", Date: "2024-05-28", Author: "Sarah Chen", Summary: "Caching on order book view and WebSocket tuning cut p95 latency by 18%.", Type: "win"},
					{ID: "upd-cp1-3", Title: "Blocked: SSO sandbox access", Date: "2024-05-22", Author: "James Wilson", Summary: "Need client approval for new OAuth app to finish UAT setup.", Type: "risk", Impact: "Medium"},
				},
				Links: []model.ResourceLink{
					{ID: "link-cp1-1", Label: "Sprint board (Linear)", URL: "https://linear.app/cindral/alphabank", Type: "ticket", Description: "Active sprint, bugs, and backlog."},
				},
			},
			{
				ID: "cp2", ProjectID: "p3", ClientName: "National History Org", Name: "Virtual Museum Tour",
				Summary: "Immersive VR tour with accessibility-first interactions.",
				Status:  model.StatusAtRisk, Health: model.HealthAmber,
				BudgetUsed: 62, StartDate: "2024-01-10", EndDate: "2024-07-15",
				NextMilestone: "Final artifact import on Jun 20",
				Team:          []string{"t3", "t7"},
				Resources: []model.ResourceLink{
					{ID: "res-cp2-1", Label: "VR build (Quest)", URL: "https://museum.cindral.app/quest-build", Type: "prototype", Description: "Latest Quest build + release notes."},
					{ID: "res-cp2-2", Label: "Asset library", URL: "https://drive.google.com/folder/museum-assets", Type: "storage", Description: "Scans, textures, renders."},
				},
				Tasks: []model.ClientProjectTask{
					{ID: "task-cp2-1", Title: "Accessibility QA sweep", Status: model.TaskInProgress, Owner: "Elena Rodriguez", DueDate: "2024-06-12", Highlight: "VoiceOver + captions across scenes."},
					{ID: "task-cp2-2", Title: "Lighting pass for Hall B", Status: model.TaskDone, Owner: "Yuki Tanaka", DueDate: "2024-05-26"},
					{ID: "task-cp2-3", Title: "Client content approvals", Status: model.TaskTodo, Owner: "Miguel Torres", DueDate: "2024-06-05", Highlight: "Need sign-off on 32 artifacts."},
				},
				Timeline: []model.TimelineItem{
					{ID: "tl-cp2-1", Label: "Photogrammetry batch 1", Date: "2024-02-20", Status: "complete", Description: "150 artifacts scanned."},
					{ID: "tl-cp2-3", Label: "Final content ingest", Date: "2024-06-20", Status: "active", Description: "Client delivery of remaining assets."},
					{ID: "tl-cp2-4", Label: "Launch + training", Date: "2024-07-15", Status: "upcoming", Description: "Playbooks, training, and go-live."},
				},
				Updates: []model.ClientUpdate{
					{ID: "upd-cp2-2", Title: "Risk: content approvals slipping", Date: "2024-05-24", Author: "Elena Rodriguez", Summary: "Approval queue backlog may push artifact ingest by ~4 days.", Type: "risk", Impact: "High"},
				},
				Links: []model.ResourceLink{
					{ID: "link-cp2-2", Label: "QA bug list", URL: "https://linear.app/cindral/board/museum", Type: "ticket", Description: "QA and UAT bugs."},
				},
			},
			{
				ID: "cp3", ProjectID: "p4", ClientName: "Cindral Entertainment Partners", Name: "Neon Odyssey Live Ops",
				Summary: "Seasonal live operations and content drops for Neon Odyssey.",
				Status:  model.StatusBehind, Health: model.HealthRed,
				BudgetUsed: 48, StartDate: "2023-11-01", EndDate: "2024-07-30",
				NextMilestone: "Season 2 balance patch on Jun 18",
				Team:          []string{"t1", "t6"},
				Resources: []model.ResourceLink{
					{ID: "res-cp3-1", Label: "Game design doc", URL: "https://docs.cindral.dev/neon-odyssey", Type: "doc", Description: "Latest mechanics, economy, and balance sheet."},
				},
				Tasks: []model.ClientProjectTask{
					{ID: "task-cp3-1", Title: "Server load test (APAC)", Status: model.TaskInProgress, Owner: "Omar Farooq", DueDate: "2024-06-08", Highlight: "Simulate 50k CCU."},
					{ID: "task-cp3-2", Title: "Seasonal skins art pass", Status: model.TaskInProgress, Owner: "Zoe O'Connell", DueDate: "2024-06-05"},
					{ID: "task-cp3-3", Title: "Balance telemetry review", Status: model.TaskDone, Owner: "Sophie Dubois", DueDate: "2024-05-22"},
				},
				Timeline: []model.TimelineItem{
					{ID: "tl-cp3-1", Label: "Season 1 post-mortem", Date: "2024-03-10", Status: "complete", Description: "Findings fed into roadmap."},
					{ID: "tl-cp3-3", Label: "Season 2 balance patch", Date: "2024-06-18", Status: "active", Description: "Economy tuning and new tracks."},
				},
				Updates: []model.ClientUpdate{
					{ID: "upd-cp3-2", Title: "Risk: asset pipeline lag", Date: "2024-05-23", Author: "Zoe O'Connell", Summary: "Asset import pipeline slowing art delivery; GPU farm upgrade scheduled.", Type: "risk", Impact: "Medium"},
				},
				Links: []model.ResourceLink{
					{ID: "link-cp3-2", Label: "Incident log", URL: "https://linear.app/cindral/board/neon-ops", Type: "ticket", Description: "Incident playbooks and follow-ups."},
				},
			},
		},
		ClientInvoices: []model.ClientInvoice{
			{ID: "INV-2024-041", ProjectID: "p2", Amount: 42000, Currency: "USD", Status: "due", IssuedOn: "2024-05-15", DueOn: "2024-06-15", Description: "Milestone 3 - Beta delivery"},
			{ID: "INV-2024-042", ProjectID: "p3", Amount: 18000, Currency: "USD", Status: "paid", IssuedOn: "2024-04-15", DueOn: "2024-04-30", Description: "Content digitization batch"},
			{ID: "INV-2024-043", ProjectID: "p3", Amount: 22000, Currency: "USD", Status: "due", IssuedOn: "2024-05-25", DueOn: "2024-06-24", Description: "VR training module"},
			{ID: "INV-2024-044", ProjectID: "p4", Amount: 15000, Currency: "USD", Status: "overdue", IssuedOn: "2024-05-01", DueOn: "2024-05-20", Description: "LiveOps sprint 1"},
		},
		Initiatives: []model.Initiative{
			{ID: "init_greencode", Title: "Green Code", Description: "Cutting compute waste across client builds.", IconName: "Leaf", Color: "text-emerald-300", Stats: []model.CSRStat{{Name: "CO2 saved", Value: 12, Unit: "t"}}},
			{ID: "init_openlabs", Title: "Open Labs", Description: "Free prototyping days for non-profits.", IconName: "Heart", Color: "text-rose-300", Stats: []model.CSRStat{{Name: "NGO partners", Value: 8, Unit: ""}}},
		},
	}
	for i := range d.ClientProjects {
		normalizeClientProject(&d.ClientProjects[i])
	}
	d.ensureSlices()
	return d
}
