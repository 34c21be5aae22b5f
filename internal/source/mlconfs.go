package source

// NewMLConfs returns the curated catalog of top-tier machine learning and AI
// research venues. These publish CFP deadlines a fixed number of months
// before the event, so the catalog derives one for each edition.
func NewMLConfs(years []int) *Catalog {
	return &Catalog{
		name:  "ml-conferences",
		tag:   "ml",
		years: years,
		series: []catalogSeries{
			{name: "Conference on Neural Information Processing Systems", series: "NeurIPS", month: 12, day: 10, domain: "ai", url: "https://neurips.cc", locationRaw: "Various - North America", cfpLeadTime: 5, extraTags: []string{"academic"}},
			{name: "International Conference on Machine Learning", series: "ICML", month: 7, day: 10, domain: "ai", url: "https://icml.cc", locationRaw: "Various", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "International Conference on Learning Representations", series: "ICLR", month: 5, day: 10, domain: "ai", url: "https://iclr.cc", locationRaw: "Various", cfpLeadTime: 5, extraTags: []string{"academic"}},
			{name: "AAAI Conference on Artificial Intelligence", series: "AAAI", month: 2, day: 10, domain: "ai", url: "https://aaai.org/conference/aaai/", locationRaw: "Various - North America", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "International Joint Conference on Artificial Intelligence", series: "IJCAI", month: 8, day: 10, domain: "ai", url: "https://ijcai.org", locationRaw: "Various", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "Annual Meeting of the Association for Computational Linguistics", series: "ACL", month: 7, day: 10, domain: "ai", url: "https://www.aclweb.org", locationRaw: "Various", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "Conference on Empirical Methods in Natural Language Processing", series: "EMNLP", month: 11, day: 10, domain: "ai", url: "https://aclanthology.org", locationRaw: "Various", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "Annual Conference of the North American Chapter of the ACL", series: "NAACL", month: 6, day: 10, domain: "ai", url: "https://naacl.org", locationRaw: "North America", cfpLeadTime: 3, extraTags: []string{"academic"}},
			{name: "COLING - International Conference on Computational Linguistics", series: "COLING", month: 10, day: 10, domain: "ai", url: "https://coling.org", locationRaw: "Various", biennialEven: true, cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "Conference on Uncertainty in Artificial Intelligence", series: "UAI", month: 8, day: 10, domain: "ai", url: "https://www.auai.org", locationRaw: "Various", cfpLeadTime: 3, extraTags: []string{"academic"}},
			{name: "International Conference on Artificial Intelligence and Statistics", series: "AISTATS", month: 4, day: 10, domain: "ai", url: "https://aistats.org", locationRaw: "Various", cfpLeadTime: 4, extraTags: []string{"academic"}},
			{name: "Conference on Robot Learning", series: "CoRL", month: 11, day: 10, domain: "ai", url: "https://corl.org", locationRaw: "Various", cfpLeadTime: 3, extraTags: []string{"academic"}},
			{name: "AutoML Conference", series: "AutoML", month: 9, day: 10, domain: "ai", url: "https://automl.cc", locationRaw: "Various", cfpLeadTime: 3, extraTags: []string{"academic"}},
		},
	}
}
