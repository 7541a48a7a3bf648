package extraction

// DefaultPhrases is the fixed catalogue of multi-word technical phrases the
// extractor recognizes. Matching is case-insensitive literal containment;
// the catalogue is data, not pattern logic, so alternative catalogues can be
// supplied via ExtractWithPhrases.
var DefaultPhrases = []string{
	"machine learning",
	"deep learning",
	"data science",
	"data analysis",
	"data pipeline",
	"natural language processing",
	"computer vision",
	"rest api",
	"restful api",
	"full stack",
	"front end",
	"back end",
	"continuous integration",
	"continuous delivery",
	"ci/cd",
	"unit testing",
	"integration testing",
	"test automation",
	"test driven development",
	"test plan",
	"version control",
	"object oriented",
	"cloud computing",
	"web development",
	"mobile development",
	"software development",
	"project management",
	"product strategy",
	"agile methodology",
	"user experience",
	"user interface",
	"user research",
	"design system",
	"responsive design",
	"react native",
	"node.js",
	"next.js",
	"a/b testing",
	"message queue",
	"infrastructure as code",
	"push notifications",
	"app store",
}
