// Package catalog provides the static enterprise use-case catalog and a
// loader for user-edited catalog files.
package catalog

import "github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"

// Builtin returns the default enterprise use-case catalog.
func Builtin() []core.UseCase {
	return []core.UseCase{
		{
			Name:        "Customer Support Automation",
			Description: "Evaluating the model's ability to handle customer support inquiries with appropriate tone, accuracy, and helpfulness.",
			Prompts: []core.PromptSpec{
				{
					Scenario:                "Product return request",
					Prompt:                  "I bought a laptop from your store 3 weeks ago and it's not working properly. The screen flickers and sometimes goes black. I'd like to return it for a refund. Can you help me with this process?",
					ExpectedCharacteristics: []string{"empathy", "clear steps", "policy information", "helpful"},
				},
				{
					Scenario:                "Billing inquiry",
					Prompt:                  "I was charged twice for my subscription this month. My credit card shows two charges of $49.99 on the same day. This is my account ID: ACC-12345. Can you explain what happened?",
					ExpectedCharacteristics: []string{"acknowledge issue", "investigation", "resolution steps", "professional"},
				},
				{
					Scenario:                "Technical troubleshooting",
					Prompt:                  "The mobile app keeps crashing whenever I try to upload a photo. I've tried restarting my phone but it still doesn't work. I'm using an iPhone 12 with iOS 16.",
					ExpectedCharacteristics: []string{"troubleshooting steps", "specific", "patient", "technical"},
				},
				{
					Scenario:                "Angry customer escalation",
					Prompt:                  "This is ridiculous! I've been on hold for 30 minutes and nobody can help me. Your service is terrible and I want to speak to a manager RIGHT NOW!",
					ExpectedCharacteristics: []string{"calm", "empathy", "de-escalation", "solution-focused"},
				},
				{
					Scenario:                "Product information request",
					Prompt:                  "I'm considering upgrading to your premium plan. Can you tell me what additional features I would get compared to the basic plan?",
					ExpectedCharacteristics: []string{"clear comparison", "value proposition", "informative", "encouraging"},
				},
			},
			Metadata: &core.UseCaseMetadata{
				TypicalVolume:     "High (1000s of interactions/day)",
				BusinessImpact:    "Direct customer satisfaction, reduced support costs",
				KeyConsiderations: []string{"Tone consistency", "Escalation handling", "Brand voice alignment"},
				IntegrationPoints: []string{"CRM systems", "Ticketing systems", "Knowledge bases"},
			},
		},
		{
			Name:        "Contract Analysis",
			Description: "Evaluating the model's ability to analyze legal documents, extract key terms, and identify potential issues.",
			Prompts: []core.PromptSpec{
				{
					Scenario:                "Extract key terms",
					Prompt:                  "Please review this clause from a vendor contract: 'The Vendor shall deliver the Software within 90 days of contract execution. If delivery is delayed beyond 120 days, Client may terminate without penalty and receive full refund of any advance payments. Payment terms are Net 30 from delivery acceptance.' What are the key terms I should be aware of?",
					ExpectedCharacteristics: []string{"deadlines", "penalties", "payment terms", "termination rights"},
				},
				{
					Scenario:                "Risk identification",
					Prompt:                  "Analyze this liability clause: 'Vendor's total liability under this Agreement shall not exceed the fees paid by Client in the 12 months preceding the claim. Vendor shall not be liable for any indirect, consequential, or punitive damages.' What risks should our legal team consider?",
					ExpectedCharacteristics: []string{"liability cap", "exclusions", "risk assessment", "implications"},
				},
				{
					Scenario:                "Compare contract versions",
					Prompt:                  "Version 1 states: 'Either party may terminate with 30 days notice.' Version 2 states: 'Client may terminate with 30 days notice; Vendor requires 90 days notice.' What changed and what's the impact?",
					ExpectedCharacteristics: []string{"comparison", "changes identified", "impact analysis", "clear"},
				},
				{
					Scenario:                "Compliance check",
					Prompt:                  "Our company policy requires all vendor contracts to include: (1) GDPR compliance clause, (2) Right to audit, (3) Data breach notification within 48 hours. Does this contract excerpt meet these requirements? 'Vendor shall comply with applicable data protection laws. Client may audit Vendor's practices annually. Vendor will notify Client of security incidents.'",
					ExpectedCharacteristics: []string{"requirement check", "gaps identified", "specific", "thorough"},
				},
				{
					Scenario:                "Plain language summary",
					Prompt:                  "Summarize this complex clause in simple terms for our procurement team: 'Notwithstanding any provision herein to the contrary, in the event of a Material Adverse Change in either party's financial condition, the non-affected party may, at its sole discretion, demand adequate assurances of performance or suspend performance pending receipt thereof.'",
					ExpectedCharacteristics: []string{"simplified", "clear", "actionable", "accurate"},
				},
			},
			Metadata: &core.UseCaseMetadata{
				TypicalVolume:     "Medium (100s of contracts/month)",
				BusinessImpact:    "Risk mitigation, faster contract review cycles",
				KeyConsiderations: []string{"Accuracy critical", "Legal review still required", "Liability concerns"},
				IntegrationPoints: []string{"Document management", "CLM systems", "E-signature platforms"},
			},
		},
		{
			Name:        "Data Extraction and Analysis",
			Description: "Evaluating the model's ability to extract, structure, and analyze data from unstructured text.",
			Prompts: []core.PromptSpec{
				{
					Scenario:                "Extract structured data from email",
					Prompt:                  "Extract the key information from this email in a structured format: 'Hi team, following up from our meeting. We agreed to launch the Q2 campaign on April 15th, budget of $250K, targeting the 25-45 age demographic in Northeast region. Sarah will lead creative, Mike handles media buying. First review meeting is March 30th at 2pm EST.'",
					ExpectedCharacteristics: []string{"structured output", "complete", "accurate dates", "organized"},
				},
				{
					Scenario:                "Sentiment analysis",
					Prompt:                  "Analyze the sentiment of these customer reviews and categorize them: (1) 'Amazing product! Exceeded expectations.' (2) 'It's okay, nothing special.' (3) 'Terrible quality, wouldn't recommend.' (4) 'Good value for the price.'",
					ExpectedCharacteristics: []string{"sentiment scores", "categorization", "reasoning", "consistent"},
				},
				{
					Scenario:                "Financial data extraction",
					Prompt:                  "Extract financial metrics from this earnings report excerpt: 'Revenue for Q4 2024 reached $1.2B, up 15% YoY. Operating margin improved to 22%, compared to 19% in Q4 2023. We added 250K new customers, bringing total to 2.1M. Customer acquisition cost decreased to $180 from $215.'",
					ExpectedCharacteristics: []string{"metrics identified", "changes noted", "structured", "complete"},
				},
				{
					Scenario:                "Pattern identification",
					Prompt:                  "Analyze these support ticket descriptions and identify common issues: (1) 'Login button not working' (2) 'Can't reset my password' (3) 'Login page loads slowly' (4) 'Forgot password link is broken' (5) 'Account locked after failed logins'",
					ExpectedCharacteristics: []string{"patterns found", "categorization", "insights", "actionable"},
				},
				{
					Scenario:                "Data validation",
					Prompt:                  "Check this data for inconsistencies: Name: John Smith, DOB: 1995-02-30, Email: john.smith@company, Phone: 555-12345, Start Date: 2024-15-03. Flag any issues.",
					ExpectedCharacteristics: []string{"errors found", "specific", "validation rules", "corrections"},
				},
			},
			Metadata: &core.UseCaseMetadata{
				TypicalVolume:     "Variable (depends on data sources)",
				BusinessImpact:    "Operational efficiency, data-driven insights",
				KeyConsiderations: []string{"Accuracy validation", "Structured output formats", "Error handling"},
				IntegrationPoints: []string{"Data warehouses", "BI tools", "ETL pipelines"},
			},
		},
		{
			Name:        "Content Generation",
			Description: "Evaluating the model's ability to generate various types of business content with appropriate tone and quality.",
			Prompts: []core.PromptSpec{
				{
					Scenario:                "Professional email",
					Prompt:                  "Write a professional email to a client informing them that their project will be delayed by 2 weeks due to unexpected technical challenges, but we're working overtime to minimize impact.",
					ExpectedCharacteristics: []string{"professional", "apologetic", "solution-focused", "clear"},
				},
				{
					Scenario:                "Product description",
					Prompt:                  "Write a compelling product description for enterprise project management software that emphasizes ease of use, real-time collaboration, and integration with existing tools. Target audience is IT managers.",
					ExpectedCharacteristics: []string{"benefits-focused", "technical credibility", "persuasive", "professional"},
				},
				{
					Scenario:                "Executive summary",
					Prompt:                  "Create an executive summary of this situation: Our customer satisfaction scores dropped from 87% to 78% over the last quarter. Main complaints are long wait times (increased from 2 to 5 minutes) and incomplete issue resolution (down from 92% to 81% first-call resolution). We've identified root causes as staff turnover (30%) and inadequate training.",
					ExpectedCharacteristics: []string{"concise", "key points", "data-driven", "executive-appropriate"},
				},
				{
					Scenario:                "FAQ generation",
					Prompt:                  "Generate 3 FAQ entries for a new feature that allows users to export their data to CSV format. The feature is in the Settings menu under 'Data Management.'",
					ExpectedCharacteristics: []string{"clear questions", "helpful answers", "step-by-step", "user-friendly"},
				},
				{
					Scenario:                "Meeting agenda",
					Prompt:                  "Create a meeting agenda for a quarterly business review with our top client. Topics to cover: Q4 performance results, upcoming renewal discussion, new feature requests, technical roadmap for next year. Meeting is 90 minutes.",
					ExpectedCharacteristics: []string{"structured", "time allocations", "clear objectives", "professional"},
				},
			},
			Metadata: &core.UseCaseMetadata{
				TypicalVolume:     "High (100s-1000s of pieces/month)",
				BusinessImpact:    "Marketing efficiency, consistent messaging",
				KeyConsiderations: []string{"Brand consistency", "Human review recommended", "SEO optimization"},
				IntegrationPoints: []string{"CMS", "Marketing automation", "Social media tools"},
			},
		},
		{
			Name:        "Code Documentation and Explanation",
			Description: "Evaluating the model's ability to understand code and generate clear technical documentation.",
			Prompts: []core.PromptSpec{
				{
					Scenario:                "Explain code functionality",
					Prompt:                  "Explain what this Python function does: `def calculate_discount(price, customer_type): if customer_type == 'premium': return price * 0.8 elif customer_type == 'standard': return price * 0.9 else: return price`",
					ExpectedCharacteristics: []string{"clear explanation", "logic described", "examples", "accurate"},
				},
				{
					Scenario:                "Generate API documentation",
					Prompt:                  "Write API documentation for this endpoint: POST /api/users creates a new user account. Required fields: email (string), password (string, min 8 chars), name (string). Returns 201 on success with user ID, 400 if validation fails, 409 if email already exists.",
					ExpectedCharacteristics: []string{"complete", "structured", "examples", "error codes"},
				},
				{
					Scenario:                "Code review comments",
					Prompt:                  "Review this code and suggest improvements: `users = [] for user in all_users: if user.active == True: if user.role == 'admin': users.append(user)`",
					ExpectedCharacteristics: []string{"specific suggestions", "best practices", "clear reasoning", "constructive"},
				},
				{
					Scenario:                "Create README section",
					Prompt:                  "Write a 'Getting Started' section for a README for a REST API client library. Users need to install via npm, initialize with API key, and make their first request.",
					ExpectedCharacteristics: []string{"step-by-step", "code examples", "clear", "beginner-friendly"},
				},
				{
					Scenario:                "Debug explanation",
					Prompt:                  "Explain why this code might fail: `data = {'name': 'Alice'} print(data['age'])`",
					ExpectedCharacteristics: []string{"identifies error", "explanation", "solution", "educational"},
				},
			},
			Metadata: &core.UseCaseMetadata{
				TypicalVolume:     "Medium (daily for dev teams)",
				BusinessImpact:    "Developer productivity, knowledge sharing",
				KeyConsiderations: []string{"Accuracy", "Up-to-date with languages", "Security awareness"},
				IntegrationPoints: []string{"IDE plugins", "Documentation systems", "Version control"},
			},
		},
	}
}
