package notion

// Test exports for white-box conversion tests.

type (
	APIBlock      = apiBlock
	APIRichText   = apiRichText
	APIText       = apiText
	APILink       = apiLink
	APIRichBody   = apiRichBody
	APIToDoBody   = apiToDoBody
	APICodeBody   = apiCodeBody
	APIPage       = apiPage
	APIProperty   = apiProperty
	APIAnnotation = apiAnnotations
)

var (
	BlockFromAPI = blockFromAPI
	BlocksToAPI  = blocksToAPI
	PageFromAPI  = pageFromAPI
)
