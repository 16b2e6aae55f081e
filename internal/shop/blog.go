package shop

import "html/template"

// BlogPost is a static article. Posts are compiled in; there is no CMS.
type BlogPost struct {
	Slug    string
	Title   string
	Excerpt string
	Body    template.HTML
}

// Posts lists the blog articles in display order.
var Posts = []BlogPost{
	{
		Slug:    "beeswax-bread-storage-benefits",
		Title:   "Why Beeswax Is the Best Thing That Ever Happened to Your Bread",
		Excerpt: "Beeswax-lined cotton keeps crusts crisp and crumbs soft far longer than plastic ever will.",
		Body: template.HTML(`<p>Plastic traps moisture against the crust; paper lets the crumb dry out. Beeswax-lined cotton does neither. The wax slows moisture loss while the weave still breathes, which is why a loaf in one of our bags stays good for most of a week.</p>
<p>Beeswax is also naturally antimicrobial, so the bag itself stays fresh between bakes with nothing more than an occasional rinse.</p>`),
	},
	{
		Slug:    "how-to-store-sourdough-bread",
		Title:   "How to Store Sourdough Bread",
		Excerpt: "Sourdough's thick crust and open crumb need different storage than a sandwich loaf.",
		Body: template.HTML(`<p>Never refrigerate sourdough. The starches recrystallize fastest at fridge temperatures and the loaf goes stale in a day. Room temperature, cut side down, inside a breathable bag is the way.</p>
<p>If you bake more than you can eat in four or five days, slice and freeze half the loaf the day you bake it.</p>`),
	},
	{
		Slug:    "bread-storage-methods-compared",
		Title:   "Bread Storage Methods, Compared",
		Excerpt: "We left the same bake in plastic, paper, a bread box, and a beeswax bag. Here is what happened.",
		Body: template.HTML(`<p>Plastic gave us a soft crust and mold by day four. Paper kept the crust but the crumb was dry by day two. The bread box landed in the middle. The beeswax bag held both crust and crumb through day five.</p>
<p>No method beats eating bread fresh, but if a loaf has to wait, wax and cotton wait best.</p>`),
	},
	{
		Slug:    "caring-for-beeswax-bread-bags",
		Title:   "Caring for Your Beeswax Bread Bag",
		Excerpt: "A minute of care after each loaf keeps a bag working for years.",
		Body: template.HTML(`<p>Shake out the crumbs, wipe the lining with a cool damp cloth, and let it air dry completely before folding it away. Skip hot water and soap with strong degreasers; both strip the wax.</p>
<p>After a year or two of heavy use the coating thins. A light re-waxing brings the bag back to new.</p>`),
	},
	{
		Slug:    "plastic-free-kitchen-swaps",
		Title:   "Five Plastic-Free Kitchen Swaps That Actually Stick",
		Excerpt: "Start with the swaps you will use daily, not the ones that look best on a shelf.",
		Body: template.HTML(`<p>Bread bags for plastic bags, wax wraps for cling film, mesh bags for produce bags, jars for tubs, and wood for plastic utensils. Each one pays for itself in a season.</p>
<p>The trick is replacing things as they wear out rather than all at once. Sustainability that requires a shopping spree rarely lasts.</p>`),
	},
	{
		Slug:    "sustainable-kitchen-solutions",
		Title:   "Building a More Sustainable Kitchen",
		Excerpt: "Small, durable, repairable things beat disposable convenience over any honest timescale.",
		Body: template.HTML(`<p>A sustainable kitchen is mostly about buying less, better. Tools made from cotton, wax, wood, and steel can be cleaned, repaired, and re-waxed instead of replaced.</p>
<p>We design everything in the shop around that idea, which is also why everything ships with care instructions.</p>`),
	},
	{
		Slug:    "handmade-kitchen-accessories",
		Title:   "What Handmade Means in Our Kitchen",
		Excerpt: "Every bag is cut, sewn, and waxed by hand in small batches.",
		Body: template.HTML(`<p>Small batches mean we catch flaws a production line would ship. They also mean fabric offcuts become drawstrings and labels instead of waste.</p>
<p>Handmade is slower and costs a little more. It is also why our oldest customer bags are still in daily use.</p>`),
	},
	{
		Slug:    "home-bakery-skills",
		Title:   "Skills Worth Learning for the Home Baker",
		Excerpt: "Good storage is the last step of good baking.",
		Body: template.HTML(`<p>Shaping, scoring, and steam get all the attention, but what you do after the loaf cools decides how most of it tastes. Cool completely before bagging; a warm loaf sweats and a damp crust goes leathery.</p>
<p>Store cut side down, keep the bag closed, and your Wednesday slice will taste like Sunday's bake.</p>`),
	},
}

// PostBySlug returns the article for a slug, or false when none exists.
func PostBySlug(slug string) (BlogPost, bool) {
	for _, post := range Posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}
