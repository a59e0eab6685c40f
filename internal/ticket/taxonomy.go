package ticket

// TopicTag is one label from the fixed classification taxonomy.
type TopicTag string

const (
	TopicHowTo         TopicTag = "How-to"
	TopicProduct       TopicTag = "Product"
	TopicConnector     TopicTag = "Connector"
	TopicLineage       TopicTag = "Lineage"
	TopicAPISDK        TopicTag = "API/SDK"
	TopicSSO           TopicTag = "SSO"
	TopicGlossary      TopicTag = "Glossary"
	TopicBestPractices TopicTag = "Best practices"
	TopicSensitiveData TopicTag = "Sensitive data"
	TopicOther         TopicTag = "Other"
)

// AllTopics lists every valid topic tag, in taxonomy order.
var AllTopics = []TopicTag{
	TopicHowTo,
	TopicProduct,
	TopicConnector,
	TopicLineage,
	TopicAPISDK,
	TopicSSO,
	TopicGlossary,
	TopicBestPractices,
	TopicSensitiveData,
	TopicOther,
}

// validTopics is the membership set for ParseTopic.
var validTopics = func() map[TopicTag]bool {
	m := make(map[TopicTag]bool, len(AllTopics))
	for _, t := range AllTopics {
		m[t] = true
	}
	return m
}()

// ParseTopic validates a raw topic string against the taxonomy.
func ParseTopic(s string) (TopicTag, bool) {
	t := TopicTag(s)
	return t, validTopics[t]
}

// Sentiment is one value from the fixed emotional-state taxonomy.
type Sentiment string

const (
	SentimentNeutral    Sentiment = "Neutral"
	SentimentCurious    Sentiment = "Curious"
	SentimentConfused   Sentiment = "Confused"
	SentimentFrustrated Sentiment = "Frustrated"
	SentimentAngry      Sentiment = "Angry"
)

// AllSentiments lists every valid sentiment label.
var AllSentiments = []Sentiment{
	SentimentNeutral,
	SentimentCurious,
	SentimentConfused,
	SentimentFrustrated,
	SentimentAngry,
}

var validSentiments = func() map[Sentiment]bool {
	m := make(map[Sentiment]bool, len(AllSentiments))
	for _, s := range AllSentiments {
		m[s] = true
	}
	return m
}()

// ParseSentiment validates a raw sentiment string against the taxonomy.
func ParseSentiment(s string) (Sentiment, bool) {
	v := Sentiment(s)
	return v, validSentiments[v]
}
