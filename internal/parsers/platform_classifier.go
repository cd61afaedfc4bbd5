package parsers

import (
	"github.com/mileusna/useragent"
)

const UnknownPlatform = "Unknown"

// Platform is the operating system family behind a user agent and whether it is a crawler.
type Platform struct {
	OS  string
	Bot bool
}

// PlatformClassifier derives a Platform from a raw user agent.
type PlatformClassifier interface {
	Classify(agent string) Platform
}

type platformClassifier struct {
	agentClassifier AgentClassifier
}

func NewPlatformClassifier(agentClassifier AgentClassifier) PlatformClassifier {
	return &platformClassifier{agentClassifier: agentClassifier}
}

func (c *platformClassifier) Classify(agent string) Platform {
	parsed := useragent.Parse(agent)

	osName := parsed.OS
	if osName == "" {
		osName = UnknownPlatform
	}

	return Platform{
		OS:  osName,
		Bot: parsed.Bot || IsBotCategory(c.agentClassifier.Classify(agent)),
	}
}
