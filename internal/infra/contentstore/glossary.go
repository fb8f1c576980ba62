package contentstore

import "github.com/Stackked239/bizpulse-api/internal/domain/content"

// seedGlossary is the static glossary. IDs are stable and unique; terms are
// not — "EBITDA", "Customer Journey" and "Digital Transformation" appear
// twice on purpose, scoped to different categories.
var seedGlossary = []content.GlossaryTerm{
	{
		ID:             1,
		Term:           "EBITDA",
		Category:       content.GlossaryFinancial,
		Definition:     "Earnings before interest, taxes, depreciation, and amortization. A proxy for operating cash generation that strips out financing and accounting choices.",
		Formula:        "EBITDA = Net Income + Interest + Taxes + Depreciation + Amortization",
		WhyItMatters:   "Buyers and lenders compare businesses on EBITDA because it ignores how each one is financed.",
		SMBApplication: "A plumbing company with $1.2M revenue and $180K EBITDA would typically be valued at 2.5-3.5x EBITDA by a buyer.",
	},
	{
		ID:             2,
		Term:           "Gross Margin",
		Category:       content.GlossaryFinancial,
		Definition:     "Revenue minus the direct cost of delivering the product or service, expressed as a percentage of revenue.",
		Formula:        "Gross Margin % = (Revenue - COGS) / Revenue x 100",
		WhyItMatters:   "It caps everything else: no amount of overhead discipline rescues a business whose gross margin is too thin.",
		SMBApplication: "A bakery selling a $5 loaf with $2 of ingredients and direct labor runs a 60% gross margin.",
	},
	{
		ID:             3,
		Term:           "Working Capital",
		Category:       content.GlossaryFinancial,
		Definition:     "Current assets minus current liabilities: the cash buffer available to fund day-to-day operations.",
		Formula:        "Working Capital = Current Assets - Current Liabilities",
		WhyItMatters:   "Profitable businesses fail when working capital runs out before receivables arrive.",
		SMBApplication: "A contractor invoicing on 60-day terms needs roughly two months of payroll and materials as working capital.",
	},
	{
		ID:             4,
		Term:           "Customer Acquisition Cost",
		Category:       content.GlossaryMarketing,
		Definition:     "Total sales and marketing spend divided by the number of new customers won in the same period.",
		Formula:        "CAC = Sales & Marketing Spend / New Customers",
		WhyItMatters:   "Paired with lifetime value, it tells you whether growth is self-funding or burning cash.",
		SMBApplication: "A gym spending $3,000/month on ads that signs 30 members pays $100 CAC against a $600 first-year membership.",
	},
	{
		ID:             5,
		Term:           "Customer Journey",
		Category:       content.GlossaryMarketing,
		Definition:     "The sequence of touchpoints a buyer moves through from first awareness to purchase and advocacy.",
		WhyItMatters:   "Mapping it exposes where prospects stall, so marketing spend targets the leaky stage instead of the loudest one.",
		SMBApplication: "A boutique found most drop-off between in-store visit and online checkout; a follow-up email recovered 12% of those sales.",
	},
	{
		ID:             6,
		Term:           "Churn Rate",
		Category:       content.GlossaryMarketing,
		Definition:     "The percentage of customers lost over a period, relative to those you started with.",
		Formula:        "Churn % = Customers Lost / Customers at Period Start x 100",
		WhyItMatters:   "High churn forces you onto an acquisition treadmill where marketing must replace revenue before growing it.",
		SMBApplication: "A lawn-care service with 200 spring clients and 160 returning in summer has 20% seasonal churn to diagnose.",
	},
	{
		ID:             7,
		Term:           "Bottleneck",
		Category:       content.GlossaryOperations,
		Definition:     "The single constraint in a process that sets the pace for the whole system's throughput.",
		WhyItMatters:   "Improving anything other than the bottleneck produces zero additional output.",
		SMBApplication: "A print shop's finishing table, not its presses, determined daily output; a second table lifted capacity 40%.",
	},
	{
		ID:             8,
		Term:           "Standard Operating Procedure",
		Category:       content.GlossaryOperations,
		Definition:     "A written, repeatable instruction for performing a routine task to a consistent standard.",
		WhyItMatters:   "SOPs convert founder knowledge into an asset the business owns, which is what buyers actually pay for.",
		SMBApplication: "A cafe's opening checklist lets any trained barista open the store without the owner present.",
	},
	{
		ID:             9,
		Term:           "Capacity Utilization",
		Category:       content.GlossaryOperations,
		Definition:     "The share of available productive capacity that is actually used.",
		Formula:        "Utilization % = Actual Output / Maximum Possible Output x 100",
		WhyItMatters:   "Chronically low utilization means overheads are spread across too little revenue; chronically full means lost orders.",
		SMBApplication: "A machine shop running at 55% utilization can absorb a major new contract without capital expenditure.",
	},
	{
		ID:             10,
		Term:           "Digital Transformation",
		Category:       content.GlossaryTechnology,
		Definition:     "Replacing manual, paper, or spreadsheet processes with integrated digital systems that capture data as a side effect of work.",
		WhyItMatters:   "The payoff is less the hours saved than the decision-grade data that starts accumulating.",
		SMBApplication: "A distributor moving order intake from phone and fax to a web portal cut entry errors by 80% and gained reorder analytics.",
	},
	{
		ID:             11,
		Term:           "Technical Debt",
		Category:       content.GlossaryTechnology,
		Definition:     "The accumulated future cost of expedient technology shortcuts: unsupported software, undocumented spreadsheets, systems only one person understands.",
		WhyItMatters:   "It compounds silently and then surfaces all at once, usually during growth or a sale.",
		SMBApplication: "An agency's billing lived in one employee's Access database; her resignation froze invoicing for three weeks.",
	},
	{
		ID:             12,
		Term:           "Single Point of Failure",
		Category:       content.GlossaryTechnology,
		Definition:     "Any person, system, or supplier whose loss stops the business.",
		WhyItMatters:   "Resilience audits start here; buyers discount heavily for them.",
		SMBApplication: "One delivery van serving every wholesale account is a single point of failure a $90/month rental agreement removes.",
	},
	{
		ID:             13,
		Term:           "Employee Turnover Rate",
		Category:       content.GlossaryHR,
		Definition:     "The percentage of the workforce that leaves over a period.",
		Formula:        "Turnover % = Departures / Average Headcount x 100",
		WhyItMatters:   "Each departure costs 50-200% of salary in recruiting, training, and lost productivity.",
		SMBApplication: "A 20-person restaurant losing 12 staff a year runs 60% turnover against an industry-acceptable 30-40%.",
	},
	{
		ID:             14,
		Term:           "Key Person Risk",
		Category:       content.GlossaryHR,
		Definition:     "Business exposure concentrated in one individual's skills, relationships, or knowledge.",
		WhyItMatters:   "It suppresses valuation and makes the owner's holiday a business continuity event.",
		SMBApplication: "If the founder closes every sale, documented playbooks and a trained second closer reduce the risk buyers will price in.",
	},
	{
		ID:             15,
		Term:           "Organizational Chart",
		Category:       content.GlossaryHR,
		Definition:     "A diagram of roles, reporting lines, and accountabilities - ideally of the business you are building, not just the one you have.",
		WhyItMatters:   "Drawing the future org chart reveals which hire actually unblocks growth.",
		SMBApplication: "A 9-person firm drew its 15-person chart and realized the next hire was an office manager, not another technician.",
	},
	{
		ID:             16,
		Term:           "EBITDA",
		Category:       content.GlossaryStrategy,
		Definition:     "In exit planning, the earnings base a sale multiple is applied to; growing it is the most direct lever on sale price.",
		WhyItMatters:   "A point of EBITDA margin is worth a multiple of that point at sale.",
		SMBApplication: "Raising EBITDA from $200K to $300K at a 3x multiple adds $300K to the exit price.",
	},
	{
		ID:             17,
		Term:           "Customer Journey",
		Category:       content.GlossaryStrategy,
		Definition:     "At the strategy level, the end-to-end experience a business promises each segment, used to prioritize investment across functions.",
		WhyItMatters:   "Strategic plans built around journeys fund what customers feel rather than what departments want.",
		SMBApplication: "An HVAC firm restructured around 'emergency' vs 'planned replacement' journeys and doubled planned-work revenue in a year.",
	},
	{
		ID:             18,
		Term:           "Digital Transformation",
		Category:       content.GlossaryStrategy,
		Definition:     "As a growth strategy, the staged re-platforming of a business model around digital channels and data assets.",
		WhyItMatters:   "Strategic transformation changes what the business sells, not only how it operates.",
		SMBApplication: "A tutoring company moved from in-home sessions to a hybrid online model and tripled its serviceable market.",
	},
	{
		ID:             19,
		Term:           "SWOT Analysis",
		Category:       content.GlossaryStrategy,
		Definition:     "A structured review of internal Strengths and Weaknesses against external Opportunities and Threats.",
		WhyItMatters:   "It forces the uncomfortable half of the conversation - weaknesses and threats - onto the agenda.",
		SMBApplication: "A retailer's SWOT flagged landlord concentration as its top threat two years before the mall's anchor tenant left.",
	},
	{
		ID:             20,
		Term:           "Business Health Score",
		Category:       content.GlossaryStrategy,
		Definition:     "A composite 0-100 index summarizing assessment results across finance, operations, technology, and people.",
		WhyItMatters:   "A single trended number makes quarter-over-quarter progress legible to busy owners.",
		SMBApplication: "An owner tracking a health score from 58 to 74 over three quarters could tie each gain to a completed initiative.",
	},
}
