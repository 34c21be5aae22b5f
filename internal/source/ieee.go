package source

// NewIEEE returns the curated catalog of major IEEE computer-science
// conferences. IEEE has no simple public API, so the series list is static.
func NewIEEE(years []int) *Catalog {
	return &Catalog{
		name:  "ieee",
		years: years,
		series: []catalogSeries{
			{name: "IEEE/CVF Conference on Computer Vision and Pattern Recognition", series: "CVPR", month: 6, domain: "ai", url: "https://cvpr.thecvf.com", extraTags: []string{"academic"}},
			{name: "IEEE/CVF International Conference on Computer Vision", series: "ICCV", month: 10, domain: "ai", url: "https://iccv.thecvf.com", biennialOdd: true, extraTags: []string{"academic"}},
			{name: "IEEE/CVF Winter Conference on Applications of Computer Vision", series: "WACV", month: 1, domain: "ai", url: "https://wacv.thecvf.com", extraTags: []string{"academic"}},
			{name: "IEEE International Conference on Robotics and Automation", series: "ICRA", month: 5, domain: "ai", url: "https://www.ieee-icra.org", extraTags: []string{"academic"}},
			{name: "IEEE/RSJ International Conference on Intelligent Robots and Systems", series: "IROS", month: 10, domain: "ai", url: "https://www.iros.org", extraTags: []string{"academic"}},
			{name: "IEEE Symposium on Security and Privacy", series: "S&P", month: 5, domain: "security", url: "https://www.ieee-security.org/TC/SP/", extraTags: []string{"academic"}},
			{name: "IEEE/ACM Design Automation Conference", series: "DAC", month: 6, domain: "software", url: "https://www.dac.com", extraTags: []string{"academic"}},
			{name: "IEEE International Conference on Acoustics, Speech and Signal Processing", series: "ICASSP", month: 4, domain: "ai", url: "https://ieeeicassp.org", extraTags: []string{"academic"}},
			{name: "IEEE Conference on Computer Communications", series: "INFOCOM", month: 5, domain: "cloud", url: "https://infocom.info", extraTags: []string{"academic"}},
			{name: "IEEE/ACM International Conference on Software Engineering", series: "ICSE", month: 5, domain: "software", url: "https://conf.researchr.org/series/icse", extraTags: []string{"academic"}},
			{name: "IEEE VIS Conference", series: "VIS", month: 10, domain: "data", url: "https://ieeevis.org", extraTags: []string{"academic"}},
			{name: "IEEE International Conference on Pervasive Computing and Communications", series: "PerCom", month: 3, domain: "mobile", url: "https://www.percom.org", extraTags: []string{"academic"}},
			{name: "IEEE International Symposium on Mixed and Augmented Reality", series: "ISMAR", month: 10, domain: "ai", url: "https://ismar.net", extraTags: []string{"academic"}},
			{name: "IEEE International Parallel and Distributed Processing Symposium", series: "IPDPS", month: 5, domain: "cloud", url: "https://www.ipdps.org", extraTags: []string{"academic"}},
			{name: "IEEE International Conference on Cloud Computing", series: "CLOUD", month: 7, domain: "cloud", url: "https://conferences.computer.org/cloud", extraTags: []string{"academic"}},
		},
	}
}
