package parsers

import "strings"

const maxAgentLabelLen = 30

// Agent categories produced by AgentClassifier.
const (
	AgentGooglebot = "Googlebot"
	AgentBingbot   = "Bingbot"
	AgentOtherBot  = "Other Bot"
	AgentCurl      = "curl"
	AgentWget      = "wget"
	AgentPython    = "Python"
	AgentEdge      = "Edge"
	AgentFirefox   = "Firefox"
	AgentChrome    = "Chrome"
	AgentSafari    = "Safari"
	AgentOpera     = "Opera"
	AgentEmpty     = "Empty"
)

type agentRule struct {
	category string
	tokens   []string
}

// agentRules is checked top to bottom and the first rule with a matching token wins.
// Bot rules must stay ahead of the browser rules, and Edge ahead of Chrome.
var agentRules = []agentRule{
	{AgentGooglebot, []string{"googlebot"}},
	{AgentBingbot, []string{"bingbot"}},
	{AgentOtherBot, []string{"bot", "crawler", "spider"}},
	{AgentCurl, []string{"curl"}},
	{AgentWget, []string{"wget"}},
	{AgentPython, []string{"python"}},
	{AgentEdge, []string{"edge", "edg/"}},
	{AgentFirefox, []string{"firefox"}},
	{AgentChrome, []string{"chrome"}},
	{AgentSafari, []string{"safari"}},
	{AgentOpera, []string{"opera"}},
}

// AgentClassifier reduces a raw user agent to a coarse category.
type AgentClassifier interface {
	Classify(agent string) string
}

type agentClassifier struct{}

func NewAgentClassifier() AgentClassifier {
	return &agentClassifier{}
}

func (c *agentClassifier) Classify(agent string) string {
	lower := strings.ToLower(agent)
	for _, rule := range agentRules {
		for _, token := range rule.tokens {
			if strings.Contains(lower, token) {
				return rule.category
			}
		}
	}

	if agent == "" || agent == "-" {
		return AgentEmpty
	}
	if truncated := truncateRunes(agent, maxAgentLabelLen); truncated != agent {
		return truncated + "..."
	}
	return agent
}

// IsBotCategory reports whether category is one of the crawler categories.
func IsBotCategory(category string) bool {
	switch category {
	case AgentGooglebot, AgentBingbot, AgentOtherBot:
		return true
	}
	return false
}
