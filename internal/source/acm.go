package source

// NewACM returns the curated catalog of flagship ACM (and co-sponsored
// USENIX) conferences.
func NewACM(years []int) *Catalog {
	return &Catalog{
		name:  "acm",
		years: years,
		series: []catalogSeries{
			{name: "ACM CHI Conference on Human Factors", series: "CHI", month: 4, domain: "web", url: "https://chi.acm.org", extraTags: []string{"academic"}},
			{name: "ACM SIGGRAPH", series: "SIGGRAPH", month: 8, domain: "ai", url: "https://s.acm.org/siggraph", extraTags: []string{"academic"}},
			{name: "ACM SIGMOD Conference on Management of Data", series: "SIGMOD", month: 6, domain: "data", url: "https://sigmod.org", extraTags: []string{"academic"}},
			{name: "ACM SIGKDD Conference on Knowledge Discovery and Data Mining", series: "KDD", month: 8, domain: "ai", url: "https://www.kdd.org", extraTags: []string{"academic"}},
			{name: "ACM SIGIR Conference on Research and Development in Information Retrieval", series: "SIGIR", month: 7, domain: "ai", url: "https://sigir.org", extraTags: []string{"academic"}},
			{name: "ACM Conference on Computer-Supported Cooperative Work", series: "CSCW", month: 10, domain: "software", url: "https://cscw.acm.org", extraTags: []string{"academic"}},
			{name: "ACM SIGPLAN Conference on Programming Language Design and Implementation", series: "PLDI", month: 6, domain: "software", url: "https://pldi.acm.org", extraTags: []string{"academic"}},
			{name: "ACM/IEEE International Symposium on Computer Architecture", series: "ISCA", month: 6, domain: "software", url: "https://iscaconf.org", extraTags: []string{"academic"}},
			{name: "ACM Symposium on Operating Systems Principles", series: "SOSP", month: 10, domain: "software", url: "https://sosp.org", extraTags: []string{"academic"}},
			{name: "ACM Conference on Computer and Communications Security", series: "CCS", month: 11, domain: "security", url: "https://www.sigsac.org/ccs", extraTags: []string{"academic"}},
			{name: "ACM MobiCom - Mobile Computing and Networking", series: "MobiCom", month: 9, domain: "mobile", url: "https://sigmobile.org/mobicom", extraTags: []string{"academic"}},
			{name: "ACM ASPLOS - Architectural Support for Programming Languages and Operating Systems", series: "ASPLOS", month: 3, domain: "software", url: "https://asplos-conference.org", extraTags: []string{"academic"}},
			{name: "USENIX Symposium on Operating Systems Design and Implementation", series: "OSDI", month: 7, domain: "software", url: "https://www.usenix.org/conference/osdi", extraTags: []string{"academic"}},
			{name: "USENIX Symposium on Networked Systems Design and Implementation", series: "NSDI", month: 4, domain: "cloud", url: "https://www.usenix.org/conference/nsdi", extraTags: []string{"academic"}},
		},
	}
}
