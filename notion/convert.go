package notion

import "github.com/fwojciec/notedown"

// blockFromAPI maps one wire block to the domain model. It never fails:
// unknown types, or known types whose payload is missing, degrade to
// [notedown.Unsupported] so the document stays renderable.
func blockFromAPI(b apiBlock) notedown.Block {
	switch b.Type {
	case "heading_1":
		if b.Heading1 != nil {
			return notedown.Heading1{Text: runsFromAPI(b.Heading1.RichText)}
		}
	case "heading_2":
		if b.Heading2 != nil {
			return notedown.Heading2{Text: runsFromAPI(b.Heading2.RichText)}
		}
	case "heading_3":
		if b.Heading3 != nil {
			return notedown.Heading3{Text: runsFromAPI(b.Heading3.RichText)}
		}
	case "paragraph":
		if b.Paragraph != nil {
			return notedown.Paragraph{Text: runsFromAPI(b.Paragraph.RichText)}
		}
	case "bulleted_list_item":
		if b.BulletedListItem != nil {
			return notedown.BulletedListItem{Text: runsFromAPI(b.BulletedListItem.RichText)}
		}
	case "numbered_list_item":
		if b.NumberedListItem != nil {
			return notedown.NumberedListItem{Text: runsFromAPI(b.NumberedListItem.RichText)}
		}
	case "to_do":
		if b.ToDo != nil {
			return notedown.ToDo{Text: runsFromAPI(b.ToDo.RichText), Checked: b.ToDo.Checked}
		}
	case "quote":
		if b.Quote != nil {
			return notedown.Quote{Text: runsFromAPI(b.Quote.RichText)}
		}
	case "code":
		if b.Code != nil {
			language := b.Code.Language
			if language == "" {
				language = defaultLanguage
			}
			return notedown.Code{Text: runsFromAPI(b.Code.RichText), Language: language}
		}
	case "divider":
		return notedown.Divider{}
	}
	return notedown.Unsupported{Type: b.Type}
}

// defaultLanguage mirrors the markdown package's fallback for untagged
// fences; a code block arriving without a language gets the same tag.
const defaultLanguage = "plain text"

// blocksToAPI maps domain blocks to wire form. Unsupported variants are
// skipped: they carry no payload the API would accept.
func blocksToAPI(blocks []notedown.Block) []apiBlock {
	out := make([]apiBlock, 0, len(blocks))
	for _, b := range blocks {
		if wire, ok := blockToAPI(b); ok {
			out = append(out, wire)
		}
	}
	return out
}

func blockToAPI(b notedown.Block) (apiBlock, bool) {
	switch b := b.(type) {
	case notedown.Heading1:
		return apiBlock{Type: "heading_1", Heading1: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.Heading2:
		return apiBlock{Type: "heading_2", Heading2: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.Heading3:
		return apiBlock{Type: "heading_3", Heading3: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.Paragraph:
		return apiBlock{Type: "paragraph", Paragraph: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.BulletedListItem:
		return apiBlock{Type: "bulleted_list_item", BulletedListItem: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.NumberedListItem:
		return apiBlock{Type: "numbered_list_item", NumberedListItem: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.ToDo:
		return apiBlock{Type: "to_do", ToDo: &apiToDoBody{RichText: runsToAPI(b.Text), Checked: b.Checked}}, true
	case notedown.Quote:
		return apiBlock{Type: "quote", Quote: &apiRichBody{RichText: runsToAPI(b.Text)}}, true
	case notedown.Code:
		return apiBlock{Type: "code", Code: &apiCodeBody{RichText: runsToAPI(b.Text), Language: b.Language}}, true
	case notedown.Divider:
		return apiBlock{Type: "divider", Divider: &struct{}{}}, true
	default:
		return apiBlock{}, false
	}
}

func runsFromAPI(runs []apiRichText) []notedown.RichText {
	out := make([]notedown.RichText, 0, len(runs))
	for _, r := range runs {
		run := notedown.RichText{Content: r.PlainText}
		if r.Text != nil {
			run.Content = r.Text.Content
			if r.Text.Link != nil {
				run.Link = r.Text.Link.URL
			}
		}
		if r.Annotations != nil {
			run.Annotations = notedown.Annotations{
				Bold:          r.Annotations.Bold,
				Italic:        r.Annotations.Italic,
				Strikethrough: r.Annotations.Strikethrough,
				Code:          r.Annotations.Code,
			}
		}
		out = append(out, run)
	}
	return out
}

func runsToAPI(runs []notedown.RichText) []apiRichText {
	out := make([]apiRichText, 0, len(runs))
	for _, r := range runs {
		out = append(out, textToAPI(r))
	}
	return out
}

func textToAPI(r notedown.RichText) apiRichText {
	wire := apiRichText{
		Type: "text",
		Text: &apiText{Content: r.Content},
	}
	if r.Link != "" {
		wire.Text.Link = &apiLink{URL: r.Link}
	}
	if r.Annotations != (notedown.Annotations{}) {
		wire.Annotations = &apiAnnotations{
			Bold:          r.Annotations.Bold,
			Italic:        r.Annotations.Italic,
			Strikethrough: r.Annotations.Strikethrough,
			Code:          r.Annotations.Code,
		}
	}
	return wire
}

// pageFromAPI maps a wire page to the domain model, pulling the title out of
// whichever property carries the title type.
func pageFromAPI(p apiPage) notedown.Page {
	page := notedown.Page{
		ID:             p.ID,
		URL:            p.URL,
		CreatedTime:    p.CreatedTime,
		LastEditedTime: p.LastEditedTime,
	}
	for _, prop := range p.Properties {
		if prop.Type != "title" || len(prop.Title) == 0 {
			continue
		}
		var title string
		for _, r := range prop.Title {
			if r.Text != nil {
				title += r.Text.Content
			} else {
				title += r.PlainText
			}
		}
		page.Title = title
		break
	}
	return page
}
