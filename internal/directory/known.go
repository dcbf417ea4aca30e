package directory

// Curated catalog of popular services and their official policy URLs, keyed
// by the lowercase query name users are likely to type.
var knownServices = map[string]Service{
	"netflix": {
		Name:       "Netflix",
		Domain:     "netflix.com",
		TermsURL:   "https://help.netflix.com/legal/termsofuse",
		PrivacyURL: "https://help.netflix.com/legal/privacy",
	},
	"spotify": {
		Name:       "Spotify",
		Domain:     "spotify.com",
		TermsURL:   "https://www.spotify.com/us/legal/end-user-agreement/",
		PrivacyURL: "https://www.spotify.com/us/legal/privacy-policy/",
	},
	"amazon": {
		Name:       "Amazon",
		Domain:     "amazon.com",
		TermsURL:   "https://www.amazon.com/gp/help/customer/display.html?nodeId=508088",
		PrivacyURL: "https://www.amazon.com/gp/help/customer/display.html?nodeId=468496",
	},
	"google": {
		Name:       "Google",
		Domain:     "google.com",
		TermsURL:   "https://policies.google.com/terms",
		PrivacyURL: "https://policies.google.com/privacy",
	},
	"instagram": {
		Name:       "Instagram",
		Domain:     "instagram.com",
		TermsURL:   "https://help.instagram.com/581066165581870",
		PrivacyURL: "https://privacycenter.instagram.com/policy",
	},
	"tiktok": {
		Name:       "TikTok",
		Domain:     "tiktok.com",
		TermsURL:   "https://www.tiktok.com/legal/page/us/terms-of-service",
		PrivacyURL: "https://www.tiktok.com/legal/page/us/privacy-policy",
	},
	"uber": {
		Name:       "Uber",
		Domain:     "uber.com",
		TermsURL:   "https://www.uber.com/legal/en/document/?name=general-terms-of-use",
		PrivacyURL: "https://www.uber.com/legal/en/document/?name=privacy-notice",
	},
	"discord": {
		Name:       "Discord",
		Domain:     "discord.com",
		TermsURL:   "https://discord.com/terms",
		PrivacyURL: "https://discord.com/privacy",
	},
	"twitter": {
		Name:       "X (Twitter)",
		Domain:     "x.com",
		TermsURL:   "https://x.com/en/tos",
		PrivacyURL: "https://x.com/en/privacy",
	},
	"facebook": {
		Name:       "Facebook",
		Domain:     "facebook.com",
		TermsURL:   "https://www.facebook.com/terms.php",
		PrivacyURL: "https://www.facebook.com/privacy/policy/",
	},
	"apple": {
		Name:       "Apple",
		Domain:     "apple.com",
		TermsURL:   "https://www.apple.com/legal/internet-services/itunes/",
		PrivacyURL: "https://www.apple.com/legal/privacy/",
	},
	"microsoft": {
		Name:       "Microsoft",
		Domain:     "microsoft.com",
		TermsURL:   "https://www.microsoft.com/en-us/servicesagreement",
		PrivacyURL: "https://privacy.microsoft.com/en-us/privacystatement",
	},
	"reddit": {
		Name:       "Reddit",
		Domain:     "reddit.com",
		TermsURL:   "https://www.redditinc.com/policies/user-agreement",
		PrivacyURL: "https://www.reddit.com/policies/privacy-policy",
	},
	"youtube": {
		Name:       "YouTube",
		Domain:     "youtube.com",
		TermsURL:   "https://www.youtube.com/t/terms",
		PrivacyURL: "https://policies.google.com/privacy",
	},
	"linkedin": {
		Name:       "LinkedIn",
		Domain:     "linkedin.com",
		TermsURL:   "https://www.linkedin.com/legal/user-agreement",
		PrivacyURL: "https://www.linkedin.com/legal/privacy-policy",
	},
	"snapchat": {
		Name:       "Snapchat",
		Domain:     "snapchat.com",
		TermsURL:   "https://snap.com/en-US/terms",
		PrivacyURL: "https://snap.com/en-US/privacy/privacy-policy",
	},
	"whatsapp": {
		Name:       "WhatsApp",
		Domain:     "whatsapp.com",
		TermsURL:   "https://www.whatsapp.com/legal/terms-of-service",
		PrivacyURL: "https://www.whatsapp.com/legal/privacy-policy",
	},
	"zoom": {
		Name:       "Zoom",
		Domain:     "zoom.us",
		TermsURL:   "https://explore.zoom.us/en/terms/",
		PrivacyURL: "https://explore.zoom.us/en/privacy/",
	},
	"openai": {
		Name:       "OpenAI",
		Domain:     "openai.com",
		TermsURL:   "https://openai.com/policies/terms-of-use",
		PrivacyURL: "https://openai.com/policies/privacy-policy",
	},
	"chatgpt": {
		Name:       "OpenAI (ChatGPT)",
		Domain:     "openai.com",
		TermsURL:   "https://openai.com/policies/terms-of-use",
		PrivacyURL: "https://openai.com/policies/privacy-policy",
	},
	"hulu": {
		Name:       "Hulu",
		Domain:     "hulu.com",
		TermsURL:   "https://www.hulu.com/terms",
		PrivacyURL: "https://www.hulu.com/privacy",
	},
}
