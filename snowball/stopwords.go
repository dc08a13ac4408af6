package snowball

// stopWords are filtered before stemming. The list covers English
// function words plus web boilerplate terms (navigation labels, URL
// fragments) that carry no signal in a crawled corpus.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
}

var stopWordList = []string{
	// Articles and conjunctions
	"a", "an", "the",
	"and", "or", "but", "nor", "so", "yet", "for",

	// Prepositions
	"about", "above", "across", "after", "against", "along", "among", "around",
	"at", "before", "behind", "below", "beneath", "beside", "between", "beyond",
	"by", "down", "during", "except", "from", "in", "inside", "into",
	"like", "near", "of", "off", "on", "onto", "out", "outside", "over",
	"past", "since", "through", "throughout", "till", "to", "toward", "under",
	"underneath", "until", "up", "upon", "with", "within", "without",

	// Pronouns
	"i", "me", "my", "mine", "myself",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself",
	"she", "her", "hers", "herself",
	"it", "its", "itself",
	"we", "us", "our", "ours", "ourselves",
	"they", "them", "their", "theirs", "themselves",

	// Auxiliary verbs
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"will", "would", "shall", "should", "can", "could", "may", "might", "must",

	// Adverbs
	"very", "too", "quite", "rather", "somewhat", "almost", "just", "only",
	"really", "even", "ever", "never", "always", "often", "sometimes", "usually",
	"well", "better", "best", "bad", "worse", "worst",

	// Quantifiers and common adjectives
	"all", "any", "both", "each", "every", "few", "many", "more", "most",
	"much", "several", "some", "such", "no", "none", "other", "same",
	"different", "new", "old", "good", "great", "high", "small", "large",
	"big", "long", "little", "young", "important", "early", "late",

	// Connectors
	"also", "however", "therefore", "thus", "hence", "consequently",
	"furthermore", "moreover", "nevertheless", "nonetheless", "otherwise",
	"similarly", "accordingly", "besides", "else", "instead", "likewise",
	"meanwhile", "namely", "next", "now", "still",
	"then", "thereafter", "undoubtedly",

	// Web boilerplate
	"click", "here", "home", "page", "website", "web", "site", "link",
	"menu", "navigation", "footer", "header", "sidebar", "content",
	"copyright", "privacy", "policy", "terms", "conditions", "contact",
	"services", "products", "blog", "news",
	"read", "view", "download", "subscribe", "sign",
	"login", "logout", "register", "account", "profile", "settings",

	// Time and place
	"today", "tomorrow", "yesterday", "when", "while", "soon", "later",
	"there", "where", "everywhere", "anywhere", "somewhere",

	// Question words and demonstratives
	"what", "which", "who", "whom", "whose", "why", "how",
	"this", "that", "these", "those",

	// Spelled-out numbers and ordinals
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"first", "second", "third", "fourth", "fifth", "last", "previous",

	// URL fragments that leak into page text
	"com", "www", "http", "https", "html", "htm", "php", "asp", "jsp",
	"index", "default", "main", "homepage",
}
