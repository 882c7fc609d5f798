// internal/reputation/tables.go
package reputation

// Rule tables for the deterministic overlay. Matching is deliberately
// naive (substring / suffix on the raw host) because these rules were
// calibrated against the trained models' observed blind spots; smarter
// matching would change classification outcomes for boundary URLs.
var (
	// Enumerated allow-list of major platform domains (substring match).
	// An entry here forces the low-risk override in the v3 rule set.
	majorLegitimateDomains = []string{
		"google.com", "facebook.com", "messenger.com", "github.com", "microsoft.com", "amazon.com",
		"apple.com", "twitter.com", "x.com", "instagram.com", "linkedin.com", "canva.com",
		"youtube.com", "reddit.com", "stackoverflow.com", "wikipedia.org",
		"netflix.com", "spotify.com", "discord.com", "twitch.tv", "steam.com",
		"epicgames.com", "riot.com", "blizzard.com", "ea.com", "ubisoft.com", "riotgames.com", "roblox.com",
	}

	// Brand keywords used by the legacy (v2) rule set, matched without TLD.
	majorBrandKeywords = []string{
		"google", "facebook", "github", "microsoft", "amazon", "apple", "twitter",
		"instagram", "linkedin", "youtube", "reddit", "stackoverflow", "wikipedia",
	}

	// Disposable/abused TLDs. .info and .biz are excluded on purpose:
	// too common among legitimate sites.
	suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".pw"}

	// Known URL shortener hosts (substring match against the domain).
	urlShorteners = []string{"bit.ly", "tinyurl.com", "ow.ly", "t.co", "goo.gl"}

	// Institutional TLD patterns that earn a risk reduction in the v3
	// default path. Substring match, as calibrated.
	institutionalPatterns = []string{".edu", ".gov", ".mil", ".org"}

	// Common legitimate patterns rewarded by the v2 rule set.
	commonLegitPatterns = []string{"www.", ".com", ".org", ".net", ".edu", ".gov"}
)
