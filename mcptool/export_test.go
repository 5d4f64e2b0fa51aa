package mcptool

// Test exports for exercising handlers directly.
var (
	SearchHandler     = searchHandler
	ReadPageHandler   = readPageHandler
	CreatePageHandler = createPageHandler
	AppendPageHandler = appendPageHandler
)
