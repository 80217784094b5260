// Package naver holds the Naver search section rules and URL layout.
package naver

import "github.com/fwojciec/serprank"

// Rules returns the extraction rules for all Naver result sections.
//
// Naver ships its result markup with hashed and frequently renamed classes,
// so every section lists its known markup variants, newest first.
func Rules() serprank.RuleSet {
	return serprank.RuleSet{
		serprank.BlogPopular: BlogPopularRule(),
		serprank.BlogGeneral: BlogGeneralRule(),
		serprank.Web:         WebRule(),
		serprank.Place:       PlaceRule(),
	}
}

// BlogPopularRule reads the "popular posts" (인기글) block of the blog page.
func BlogPopularRule() serprank.SectionRule {
	return serprank.SectionRule{
		Kind: serprank.BlogPopular,
		Strategies: []serprank.Strategy{
			{
				Name:      "view",
				Container: "section.sc_new.sp_nreview",
				Items:     "ul.lst_view > li.bx",
				Title:     serprank.Field{Selector: ".title_area a.title_link"},
				Body:      serprank.Field{Selector: ".dsc_area a.dsc_link"},
			},
			{
				Name:      "view-compact",
				Container: "section.sp_nreview",
				Items:     "li.bx",
				Title:     serprank.Field{Selector: "a.title_link"},
				Body:      serprank.Field{Selector: "a.dsc_link"},
			},
		},
	}
}

// BlogGeneralRule reads the general blog post list of the blog page.
func BlogGeneralRule() serprank.SectionRule {
	return serprank.SectionRule{
		Kind: serprank.BlogGeneral,
		Strategies: []serprank.Strategy{
			{
				Name:      "total",
				Container: "section.sc_new.sp_ntotal._prs_web_gen",
				Items:     "ul.lst_total > li.bx",
				Title:     serprank.Field{Selector: "a.link_tit"},
				Body:      serprank.Field{Selector: "a.api_txt_lines.total_dsc"},
			},
			{
				Name:      "total-compact",
				Container: "section.sp_ntotal",
				Items:     "li.bx",
				Title:     serprank.Field{Selector: "a.link_tit"},
				Body:      serprank.Field{Selector: ".total_dsc"},
			},
		},
	}
}

// WebRule reads the web document list of the integrated search page.
// Sponsored and "save" promo blocks are skipped.
func WebRule() serprank.SectionRule {
	sponsored := serprank.HasAny(".api_sponsor", ".btn_save")
	return serprank.SectionRule{
		Kind: serprank.Web,
		Strategies: []serprank.Strategy{
			{
				Name:      "total",
				Container: "section.sc_new.sp_ntotal",
				Items:     "ul.lst_total > li.bx",
				Sponsored: sponsored,
				Title:     serprank.Field{Selector: "a.link_tit"},
				Body:      serprank.Field{Selector: "div.total_dsc_wrap .api_txt_lines"},
			},
			{
				Name:      "total-compact",
				Container: "section.sp_ntotal",
				Items:     "li.bx",
				Sponsored: sponsored,
				Title:     serprank.Field{Selector: "a.link_tit"},
				Body:      serprank.Field{Selector: ".api_txt_lines"},
			},
		},
	}
}

// PlaceRule reads the local listing of the place page. Entries carrying the
// ad label are skipped. Entries are matched on their address.
func PlaceRule() serprank.SectionRule {
	sponsored := serprank.HasAny(".place_ad_label_text")
	return serprank.SectionRule{
		Kind: serprank.Place,
		Strategies: []serprank.Strategy{
			{
				Name:      "list",
				Container: "ul.zPw6U",
				Items:     "li.DWs4Q",
				Sponsored: sponsored,
				Title:     serprank.Field{Selector: "div.LYTmB > a.place_bluelink"},
				Address:   serprank.Field{Selector: "div.w32a4 span.Pb4bU"},
			},
			{
				// The list class is rehashed more often than the item class.
				Name:      "items",
				Container: "ul:has(li.DWs4Q)",
				Items:     "li.DWs4Q",
				Sponsored: sponsored,
				Title:     serprank.Field{Selector: "a.place_bluelink"},
				Address:   serprank.Field{Selector: "span.Pb4bU"},
			},
		},
	}
}
