package contentstore

import "github.com/Stackked239/bizpulse-api/internal/domain/content"

// seedPosts is the static blog catalog. Slugs must stay unique; the store
// constructor panics otherwise so a bad seed never ships.
var seedPosts = []content.Post{
	{
		Title:    "The Hidden Costs Draining Your Cash Flow (And How to Find Them)",
		Excerpt:  "Most small businesses leak 5-10% of revenue through invisible costs. Learn the systematic way to surface them before they compound.",
		Author:   "Maria Delgado",
		Date:     "June 18, 2025",
		ReadTime: "8 min read",
		Category: "Finance",
		Slug:     "hidden-costs-draining-cash-flow",
		Image:    "/images/blog/hidden-costs.jpg",
		AltText:  "Calculator and invoices on a desk",
		Keywords: "cash flow, hidden costs, expense audit, profit leakage, working capital, budgeting",
	},
	{
		Title:    "EBITDA Explained: What It Tells Buyers About Your Business",
		Excerpt:  "If you ever plan to sell, EBITDA is the number buyers look at first. Here is how to calculate it and what moves it.",
		Author:   "James Oyelaran",
		Date:     "May 30, 2025",
		ReadTime: "6 min read",
		Category: "Finance, Growth Strategy",
		Slug:     "ebitda-explained-for-owners",
		Image:    "/images/blog/ebitda.jpg",
		AltText:  "Chart showing earnings growth",
		Keywords: "EBITDA, valuation, exit planning, earnings, multiples, due diligence",
	},
	{
		Title:    "Employee Retention, Company Culture, and the Real Cost of Turnover",
		Excerpt:  "Replacing an employee costs 50-200% of their salary. A retention-first operations playbook pays for itself in one quarter.",
		Author:   "Priya Nair",
		Date:     "May 12, 2025",
		ReadTime: "9 min read",
		Category: "HR & Leadership, Operations",
		Slug:     "employee-retention-cost-of-turnover",
		Image:    "/images/blog/retention.jpg",
		AltText:  "Team meeting around a whiteboard",
		Keywords: "employee retention, turnover cost, company culture, onboarding, engagement, operations",
	},
	{
		Title:    "Customer Retention Math: Why a 5% Improvement Doubles Profit",
		Excerpt:  "The classic retention study still holds. We walk through the arithmetic with a real SMB example.",
		Author:   "Maria Delgado",
		Date:     "April 28, 2025",
		ReadTime: "7 min read",
		Category: "Sales & Marketing",
		Slug:     "customer-retention-math",
		Image:    "/images/blog/retention-math.jpg",
		AltText:  "Graph of customer cohorts over time",
		Keywords: "customer retention, churn, lifetime value, repeat purchase, loyalty",
	},
	{
		Title:    "A Practical Guide to Process Mapping for Small Teams",
		Excerpt:  "You do not need consultants to map your core processes. A whiteboard afternoon surfaces the bottlenecks that cost you hours every week.",
		Author:   "Tomas Lindqvist",
		Date:     "April 10, 2025",
		ReadTime: "11 min read",
		Category: "Operations",
		Slug:     "process-mapping-small-teams",
		Image:    "/images/blog/process-map.jpg",
		AltText:  "Sticky notes arranged as a flow diagram",
		Keywords: "process mapping, bottlenecks, workflow, standard operating procedures, efficiency",
	},
	{
		Title:    "Digital Transformation Without the Buzzwords: A 90-Day Plan",
		Excerpt:  "Skip the vision decks. Pick three manual processes, automate them, measure the hours saved, repeat.",
		Author:   "James Oyelaran",
		Date:     "March 22, 2025",
		ReadTime: "10 min read",
		Category: "Technology, Operations",
		Slug:     "digital-transformation-90-day-plan",
		Image:    "/images/blog/digital-90.jpg",
		AltText:  "Laptop with automation dashboard",
		Keywords: "digital transformation, automation, software adoption, technology roadmap, productivity",
	},
	{
		Title:    "How to Read Your P&L Like an Investor",
		Excerpt:  "Five lines on your profit and loss statement tell most of the story. Learn which ones and what questions they should trigger.",
		Author:   "Maria Delgado",
		Date:     "March 3, 2025",
		ReadTime: "6 min read",
		Category: "Finance",
		Slug:     "read-your-pl-like-an-investor",
		Image:    "/images/blog/pl-statement.jpg",
		AltText:  "Printed profit and loss statement with annotations",
		Keywords: "profit and loss, P&L, gross margin, revenue, financial statements, investor",
	},
	{
		Title:    "Hiring Your First Manager: Signals You're Ready",
		Excerpt:  "Founders wait too long to delegate. These five signals mean the bottleneck is you, not the market.",
		Author:   "Priya Nair",
		Date:     "February 14, 2025",
		ReadTime: "8 min read",
		Category: "HR & Leadership",
		Slug:     "hiring-your-first-manager",
		Image:    "/images/blog/first-manager.jpg",
		AltText:  "Two people in a job interview",
		Keywords: "hiring, delegation, management, org design, founder bottleneck, talent",
	},
	{
		Title:    "Choosing Business Software: A Scorecard That Prevents Shelfware",
		Excerpt:  "Half of SMB software purchases go unused within a year. Score candidates on adoption risk before price.",
		Author:   "Tomas Lindqvist",
		Date:     "January 27, 2025",
		ReadTime: "7 min read",
		Category: "Technology",
		Slug:     "choosing-business-software-scorecard",
		Image:    "/images/blog/software-scorecard.jpg",
		AltText:  "Comparison table of software options",
		Keywords: "software selection, SaaS, shelfware, adoption, IT spend, tooling",
	},
	{
		Title:    "The Quarterly Business Health Check: A 30-Minute Routine",
		Excerpt:  "Twelve questions across finance, operations, technology, and people. Answer them every quarter and trends become obvious.",
		Author:   "James Oyelaran",
		Date:     "January 8, 2025",
		ReadTime: "5 min read",
		Category: "Growth Strategy, Finance, Operations",
		Slug:     "quarterly-business-health-check",
		Image:    "/images/blog/health-check.jpg",
		AltText:  "Checklist on a clipboard",
		Keywords: "business health, assessment, quarterly review, KPIs, benchmarks, strategy",
	},
}
