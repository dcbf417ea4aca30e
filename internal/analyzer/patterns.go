package analyzer

// The built-in attribute table. Patterns are grouped by the severity they
// indicate and ordered most-specific-first within each group; the first
// match wins. Revisions here are data edits: the classification and scoring
// logic never needs to change with them.

var defaultSpecs = []attributeSpec{
	{
		ID:               "data_selling",
		Label:            "Sells User Data",
		Weight:           15,
		NegationDominant: true,
		Good: []string{
			`(do\s+not|don.t|never|will\s+not|won.t)\s+sell\s+(your\s+)?(personal\s+)?(data|information)`,
			`we\s+(do\s+not|don.t|never)\s+sell`,
			`not\s+sell\s+(or\s+rent\s+)?(your\s+)?personal`,
			`we\s+will\s+not\s+sell\s+your`,
		},
		Bad: []string{
			`sell\w*\s+(your\s+)?(personal\s+)?(data|information)`,
			`share\s+(your\s+)?(personal\s+)?(data|information)\s+with\s+.{0,20}(advertis|market)`,
			`monetiz\w+\s+(your\s+)?(data|information)`,
			`(data|information)\s+(may|will|can)\s+be\s+sold`,
			`sell\s+(or\s+rent\s+)?(your\s+)?personal`,
			`share.{0,30}(advertising|marketing)\s+partner`,
		},
		Context: []string{
			`(personal\s+)?(data|information).{0,80}(third.part|partner|advertis|share|collect|use|process)`,
			`(collect|gather|obtain)\s+(your\s+)?(personal\s+)?(data|information)`,
		},
		GoodValue: "No — does not sell personal data",
		BadValue:  "Yes — may sell or share data with advertisers",
		Fallback: "The policy does not contain explicit language about selling or not selling user data to third parties. " +
			"This could indicate the company avoids directly addressing this practice.",
	},
	{
		ID:               "data_sharing",
		Label:            "Shares Data with Partners",
		Weight:           10,
		NegationDominant: true,
		Good: []string{
			`(do\s+not|don.t|never)\s+share\s+(your\s+)?(personal\s+)?(data|information)\s+with\s+third`,
			`limit\w*\s+shar(ing|e)\s+of\s+(your\s+)?(personal\s+)?(data|information)`,
			`only\s+share.{0,30}(necessary|essential|required|needed)`,
		},
		Bad: []string{
			`share\s+(your\s+)?(personal\s+)?(data|information)\s+with\s+(our\s+)?(affiliat|partner|third.part|vendor|service\s+provider)`,
			`disclose\s+(your\s+)?(personal\s+)?(data|information)\s+to\s+(our\s+)?(affiliat|partner|third.part)`,
			`provide\s+(your\s+)?(data|information)\s+to\s+(our\s+)?(affiliat|partner|third.part)`,
			`(may|will)\s+(also\s+)?share\s+(your\s+)?(personal\s+)?(data|information)`,
			`categories\s+of\s+third\s+parties\s+.{0,30}(share|disclose|provide)`,
		},
		Context: []string{
			`(share|sharing|disclose|disclosure).{0,60}(data|information|personal)`,
		},
		GoodValue: "Limited or no third-party data sharing",
		BadValue:  "Shares data with third parties and affiliates",
		Fallback:  "The policy does not clearly state its data sharing practices with third-party partners or affiliates.",
	},
	{
		ID:     "account_deletion",
		Label:  "Account & Data Deletion",
		Weight: 10,
		Good: []string{
			`(delete|close|deactivate|terminate)\s+your\s+account`,
			`request\s+(the\s+)?(deletion|removal|erasure)\s+of\s+your\s+(personal\s+)?(data|information|account)`,
			`right\s+to\s+(have\s+)?(your\s+)?(personal\s+)?(data|information|account)\s+(deleted|erased|removed)`,
			`right\s+to\s+be\s+forgotten`,
			`right\s+to\s+(request\s+)?(deletion|erasure)`,
			`you\s+(can|may)\s+(request\s+)?(to\s+)?(delete|erase|remove)\s+(your\s+)?(account|personal)`,
		},
		Bad: []string{
			`(cannot|can.t|unable\s+to)\s+(fully\s+)?(delete|remove|erase)\s+(your\s+)?account`,
			`(retain|keep|maintain)\s+(your\s+)?(personal\s+)?(data|information).{0,30}(even\s+after|after\s+you|after\s+account|indefinit)`,
			`(may\s+)?(retain|keep)\s+(certain|some)\s+(data|information)\s+after\s+(deletion|you\s+delete|account\s+closure)`,
			`(not\s+possible|unable)\s+to\s+(completely\s+)?(delete|remove|erase)`,
		},
		Context: []string{
			`(account|data|information).{0,60}(delet|remov|eras|clos|terminat|deactivat)`,
			`(delet|remov|eras|clos|terminat).{0,60}(account|data|information|personal)`,
		},
		GoodValue: "Yes — users can delete their account and data",
		BadValue:  "No clear account deletion option",
		Fallback: "The policy does not explicitly describe a process for users to delete their accounts or request data erasure. " +
			"Users may need to contact support directly.",
	},
	{
		ID:     "encryption",
		Label:  "Data Encryption",
		Weight: 10,
		Good: []string{
			`encrypt\w+\s+(at\s+rest|in\s+transit|in\s+storage)`,
			`(data|information)\s+(is|are)\s+encrypt`,
			`(use|implement|employ)\s+encrypt`,
			`(SSL|TLS|AES|end.to.end)\s+encrypt`,
			`(secure|encrypted)\s+(connection|transmission|communication|storage)`,
			`industry.standard\s+(security|encryption|protection)`,
		},
		Bad: []string{
			`(no|without|lack\s+of)\s+encrypt`,
			`unencrypt\w+\s+(data|information|transmission)`,
			`(data|information)\s+(is|are)\s+not\s+encrypt`,
		},
		Context: []string{
			`(security|protect|safeguard|encrypt).{0,80}(data|information|measure|practice)`,
			`(data|information).{0,80}(security|protect|safeguard|encrypt)`,
		},
		GoodValue: "Yes — data is encrypted",
		BadValue:  "No encryption practices mentioned",
		Fallback: "The policy does not mention encryption, SSL/TLS, or specific data security measures. " +
			"This does not necessarily mean data is unprotected, but transparency is lacking.",
	},
	{
		ID:     "data_retention",
		Label:  "Data Retention Period",
		Weight: 8,
		Good: []string{
			`(delete|remove|erase)\s+(your\s+)?(data|information)\s+(within|after|no\s+later\s+than)\s+\d+\s+(day|month|year)`,
			`retain\w*\s+(your\s+)?(data|information)\s+for\s+(only\s+)?(a\s+)?(\d+|limited|short|minimum)`,
			`retention\s+period\s+(of\s+)?\d+\s+(day|month|year)`,
			`(data|information).{0,30}(retained|kept|stored)\s+for\s+(no\s+longer|only|up\s+to)\s+\d+`,
		},
		Bad: []string{
			`retain\w*\s+(your\s+)?(data|information)\s+(indefinit|permanent|forever|without\s+limit)`,
			`(may\s+)?(retain|keep|maintain|store)\s+(your\s+)?(data|information|personal).{0,30}(as\s+long\s+as|for\s+as\s+long|necessary|needed|required|indefinit)`,
			`retain\w*\s+(your\s+)?(data|information).{0,20}after\s+(you\s+)?(terminat|delet|close|cancel)`,
			`(continue|keep)\s+to\s+(store|retain|keep).{0,30}after.{0,20}(account|cancel|terminat|delet)`,
		},
		Context: []string{
			`(retain|retention|keep|store|preserv).{0,80}(data|information|personal|record)`,
			`(data|information).{0,80}(retain|retention|keep|stor|preserv|period)`,
		},
		GoodValue: "Limited retention period specified",
		BadValue:  "Data retained indefinitely or long-term",
		Fallback:  "The policy does not specify how long user data is retained or what happens to data after account closure.",
	},
	{
		ID:               "third_party_tracking",
		Label:            "Third-Party Tracking",
		Weight:           10,
		NegationDominant: true,
		Good: []string{
			`(do\s+not|don.t|never)\s+(use\s+)?(third.party|3rd.party)\s+(cookie|track|analytic)`,
			`(no|without)\s+(third.party|3rd.party)\s+(cookie|track|analytic)`,
			`(do\s+not|don.t)\s+track\s+(your\s+)?(activity|behavior|browsing)`,
		},
		Bad: []string{
			`(third.party|3rd.party)\s+(cookie|track|analytic|beacon|pixel|tag)`,
			`(google\s+analytics|facebook\s+pixel|advertising\s+partner|ad\s+network)`,
			`(track|monitor|collect).{0,20}(your\s+)?(activity|behavior|browsing|usage|interaction)`,
			`(cookie|tracker|pixel|beacon)\s+(from|by|of|set\s+by)\s+(third|3rd|advertis|partner)`,
			`(advertising|analytics|tracking)\s+(cookie|technolog|tool|partner|provider)`,
			`interest.based\s+(advertising|ads|marketing)`,
			`targeted\s+(advertising|ads|marketing)`,
		},
		Context: []string{
			`(cookie|track|analytic|advertis).{0,80}(third|partner|provider|technology)`,
		},
		GoodValue: "No third-party tracking",
		BadValue:  "Uses third-party trackers and cookies",
		Fallback:  "The policy does not explicitly address the use of third-party tracking technologies, cookies, or analytics tools.",
	},
	{
		ID:     "government_requests",
		Label:  "Government Data Requests",
		Weight: 7,
		Good: []string{
			`(notify|inform|alert)\s+(you|user|subscriber)\s+(of|about|when|before).{0,30}(government|law\s+enforcement|legal)\s+(request|order|demand)`,
			`transparency\s+report`,
			`(will|shall)\s+(attempt\s+to\s+)?(notify|inform)\s+(you|user)\s+(before|prior\s+to)\s+(disclos|comply|respond)`,
		},
		Bad: []string{
			`(comply|cooperat|respond)\s+(with\s+)?(law\s+enforcement|government|legal|court|judicial)\s+(request|order|subpoena|warrant|demand)`,
			`disclos\w*\s+(your\s+)?(personal\s+)?(data|information)\s+(to|in\s+response\s+to|when\s+required\s+by)\s+(law\s+enforcement|government|authorit|legal|court)`,
			`(required|compelled|obligated)\s+(by|under)\s+(law|court\s+order|legal\s+process|subpoena)\s+to\s+(disclose|provide|share|reveal)`,
			`(may|will|can)\s+(be\s+required\s+to\s+)?(disclose|provide|share).{0,30}(law\s+enforcement|government|legal|authorit)`,
		},
		Context: []string{
			`(law\s+enforcement|government|legal|court|judicial|subpoena).{0,80}(request|order|demand|disclos|comply|data|information)`,
		},
		GoodValue: "Users are notified of government data requests",
		BadValue:  "Complies with requests without notifying users",
		Fallback: "The policy does not describe its process for handling government or law enforcement data requests, " +
			"or whether users are notified.",
	},
	{
		ID:     "arbitration_clause",
		Label:  "Mandatory Arbitration",
		Weight: 8,
		Good: []string{
			`(no\s+|without\s+)(mandatory|binding)\s+arbitration`,
			`(right|option|choice)\s+to\s+(go\s+to|bring\s+.{0,15}in|pursue\s+.{0,15}in)\s+court`,
			`(may|can)\s+bring\s+(a\s+)?(claim|dispute|action)\s+in\s+court`,
		},
		Bad: []string{
			`(mandatory|binding|compulsory)\s+arbitration`,
			`(agree|consent)\s+to\s+(resolve\s+.{0,20}through\s+)?arbitrat`,
			`(dispute|claim|controversy)\s+(shall|will|must)\s+be\s+(resolved|settled|decided)\s+(by|through|in|via)\s+arbitration`,
			`waiv\w*\s+(your\s+)?right\s+to\s+(a\s+)?(jury\s+)?trial`,
			`(are\s+)?agreeing\s+to\s+(binding\s+)?arbitration`,
			`arbitration\s+(shall|will)\s+be\s+(final|binding)`,
		},
		Context: []string{
			`(arbitrat|dispute\s+resolution|legal\s+dispute|claim\s+resolution).{0,100}(binding|mandatory|agree|waiv|court|trial|resolve)`,
		},
		GoodValue: "No mandatory arbitration",
		BadValue:  "Mandatory binding arbitration required",
		Fallback:  "The policy does not contain a mandatory arbitration clause. Disputes may be handled through standard legal channels.",
	},
	{
		ID:     "class_action_waiver",
		Label:  "Class-Action Waiver",
		Weight: 7,
		Good: []string{
			`(right|option|ability)\s+to\s+(participat|join|bring|commence).{0,20}(class.action|class\s+action|collective)`,
		},
		Bad: []string{
			`(waiv|relinquish|give\s+up)\w*\s+(your\s+)?right\s+to\s+(a\s+)?(class.action|class\s+action|collective\s+action|representative\s+action)`,
			`(agree|consent).{0,20}(not\s+to\s+)?(bring|participat|join|commence).{0,20}(class.action|class\s+action|collective|representative)`,
			`class.action\s+waiver`,
			`(only|solely)\s+(on\s+an?\s+)?individual\s+basis`,
			`(no|not\s+permitted|prohibited).{0,15}(class.action|class\s+action|collective|representative)\s+(lawsuit|action|proceeding|claim)`,
		},
		Context: []string{
			`(class.action|class\s+action|collective|representative|individual\s+basis).{0,100}(waiv|right|agree|bring|participat)`,
		},
		GoodValue: "Class-action rights preserved",
		BadValue:  "Class-action lawsuit rights waived",
		Fallback:  "The policy does not explicitly waive or preserve users' rights to participate in class-action lawsuits.",
	},
	{
		ID:     "unilateral_changes",
		Label:  "Unilateral Terms Changes",
		Weight: 5,
		Good: []string{
			`(will|shall)\s+(provide\s+)?(notify|inform|alert|give\s+.{0,10}notice)\s+(you|user)\s+(of|about|before|prior\s+to|in\s+advance)`,
			`(30|60|90)\s+day\w*\s+(advance\s+)?noti(ce|fication)\s+(before|prior\s+to|of)\s+(any\s+)?(material\s+)?(change|modif)`,
			`(advance|prior|reasonable)\s+noti(ce|fication)\s+of\s+(any\s+)?(material\s+)?(change|modif)`,
			`(email|notify)\s+(you|user)\s+(before|prior).{0,20}(change|modif|updat)`,
		},
		Bad: []string{
			`(may|can|reserve\s+the\s+right\s+to)\s+(change|modify|update|amend|revis)\s+(these\s+)?(terms|agreement|policy|conditions)\s+(at\s+any\s+time|without\s+(?:prior\s+)?notice|in\s+our\s+(?:sole\s+)?discretion)`,
			`(change|modif|updat)\w*\s+(these\s+)?(terms|agreement|policy).{0,20}(without\s+)?(prior\s+)?noti(ce|fy|fication)`,
			`(your\s+)?continued\s+use\s+.{0,30}(constitutes|means|indicates)\s+(your\s+)?(acceptance|agreement|consent)`,
			`(effective|binding)\s+(immediately|upon\s+posting|when\s+posted)`,
		},
		Context: []string{
			`(change|modify|update|amend|revis).{0,80}(terms|agreement|policy|conditions|notice|notification)`,
		},
		GoodValue: "Advance notice provided before changes",
		BadValue:  "Can change terms without prior notice",
		Fallback:  "The policy does not clearly state how changes to terms are communicated to users or how much notice is given.",
	},
	{
		ID:     "liability_limitation",
		Label:  "Liability Limitation",
		Weight: 5,
		Good: []string{
			`(full|unlimited|complete)\s+liability`,
			`(responsible|liable)\s+for\s+(all|any)\s+(damages|losses|harm)`,
			`(no\s+)?limitation\s+(on|of)\s+(our\s+)?liability`,
		},
		Bad: []string{
			`(limit|cap|exclud|disclaim)\w*\s+(of\s+)?(our|its|the\s+company.s|.{0,20})?\s*(liability|damages|responsibility)`,
			`(in\s+no\s+event|under\s+no\s+circumstance).{0,20}(shall|will).{0,30}(liable|liability|responsible)`,
			`(aggregate|total|maximum|cumulative)\s+liability\s+(shall|will|of).{0,20}(not\s+exceed|be\s+limited|limited\s+to)`,
			`(as.is|as\s+available|without\s+warrant)`,
			`(disclaim|exclude)\s+(all|any)\s+(warrant|liabilit|responsibilit|damage)`,
			`(shall|will)\s+not\s+be\s+(liable|responsible)\s+for\s+(any\s+)?(indirect|consequential|incidental|special|punitive|exemplary)`,
		},
		Context: []string{
			`(liabilit|warrant|disclaim|damage|responsib|as.is).{0,100}(limit|cap|exclud|disclaim|indemn|maximum|aggregate)`,
		},
		GoodValue: "Full liability accepted",
		BadValue:  "Liability is capped or broadly excluded",
		Fallback:  "The policy does not contain explicit liability limitations or warranty disclaimers.",
	},
	{
		ID:     "content_license",
		Label:  "License to Your Content",
		Weight: 5,
		Good: []string{
			`(you\s+)?(own|retain)\s+(all\s+)?(right|ownership|intellectual\s+property)\s+(to|of|in)\s+(your\s+)?(content|material|upload)`,
			`(no|not|don.t|do\s+not)\s+(claim|take|assert)\s+(any\s+)?(ownership|proprietary)\s+(right|interest|claim)\s+(to|of|in|over)\s+(your\s+)?(content|material)`,
			`your\s+content\s+(remains|is|stays)\s+(your\s+)?(property|own)`,
		},
		Bad: []string{
			`(grant|give)\s+(us|.{0,30})\s+(a\s+)?(worldwide|perpetual|irrevocable|non.exclusive|royalty.free|sublicens|transferable).{0,50}(license|right)`,
			`(license|right)\s+to\s+(use|reproduce|modify|distribute|display|perform|create\s+derivative).{0,30}(your\s+)?(content|material|submission|post|upload)`,
			`(perpetual|irrevocable|unlimited|worldwide).{0,30}(license|right)\s+to\s+(your\s+)?(content|material|upload)`,
			`(we\s+may|reserves?\s+the\s+right\s+to)\s+(use|reproduce|modify|remove|disable\s+access\s+to)\s+(any\s+)?(user\s+)?(content|material)`,
		},
		Context: []string{
			`(user\s+)?(content|material|submission|upload).{0,80}(license|right|own|retain|grant|use|reproduce|modify)`,
			`(license|right|grant|own).{0,80}(content|material|submission|upload)`,
		},
		GoodValue: "Users retain full content ownership",
		BadValue:  "Claims broad license to your content",
		Fallback:  "The policy does not clearly address what rights the company claims over user-generated content.",
	},
}

var defaultLibrary = func() *Library {
	lib, err := buildLibrary(defaultSpecs)
	if err != nil {
		panic("analyzer: invalid built-in attribute table: " + err.Error())
	}
	return lib
}()

// DefaultLibrary returns the built-in attribute table.
func DefaultLibrary() *Library {
	return defaultLibrary
}
