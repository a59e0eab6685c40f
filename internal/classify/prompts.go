package classify

import "fmt"

const classifierSystemPrompt = "You are a support ticket classifier. Respond with JSON only. No reasoning outside the JSON, no explanations, no additional text."

const topicPromptTemplate = `Classify this support ticket into the most appropriate categories. Consider the main focus and context of the user's request.

Categories:
- How-to: Questions about how to use features, step-by-step instructions, tutorials, or guidance on performing specific tasks
- Product: General product questions, feature requests, bug reports, or issues with core functionality
- Connector: Questions about connecting external data sources, database integrations, or third-party tool connections
- Lineage: Questions about data lineage, data flow, dependencies, or understanding how data moves through systems
- API/SDK: Questions about programmatic access, API usage, SDK implementation, or developer integrations
- SSO: Questions about single sign-on, authentication, user management, or security access controls
- Glossary: Questions about business glossary, data definitions, terminology, or metadata management
- Best practices: Questions about recommended approaches, governance, compliance, or optimization strategies
- Sensitive data: Questions about data privacy, PII handling, security classifications, or compliance requirements
- Other: Questions that don't fit into the above categories or are too general to classify

Subject: %s
Body: %s

Respond with JSON only:
{"topics": ["category_name"], "confidence": 0.0, "reasoning": "one sentence"}`

const sentimentPromptTemplate = `Analyze the sentiment of this customer support ticket. Consider the tone, urgency, and emotional state of the user.

Categories:
- Neutral: Professional, objective, matter-of-fact tone. The user is calm and simply asking a question or making a routine request.
- Curious: The user is seeking to learn, explore, or understand something new. Inquisitive and open, without frustration.
- Confused: The user expresses uncertainty or lack of understanding about a process, feature, or outcome and needs clarification.
- Frustrated: The user is annoyed, blocked, or experiencing repeated issues. Irritation or impatience short of anger.
- Angry: The user is openly hostile, very upset, or uses strong negative language. Aggressive or accusatory tone.

Subject: %s
Body: %s

Respond with JSON only:
{"sentiment": "category", "confidence": 0.0}`

func topicPrompt(subject, body string) string {
	return fmt.Sprintf(topicPromptTemplate, subject, body)
}

func sentimentPrompt(subject, body string) string {
	return fmt.Sprintf(sentimentPromptTemplate, subject, body)
}
