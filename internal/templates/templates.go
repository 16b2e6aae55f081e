package templates

import (
	"embed"
	"html/template"

	"dearmomollie/internal/config"
)

//go:embed html/*.html
var htmlFiles embed.FS

var Home,
	About,
	Products,
	Blog,
	BlogPost,
	Momongo *template.Template

func Init(cfg *config.Config, styleAssetPath string) error {
	funcs := template.FuncMap{
		"StyleAssetPath": func() string { return styleAssetPath },
	}
	tmpls, err := template.New("all").Funcs(funcs).ParseFS(htmlFiles, "html/*.html")
	if err != nil {
		return err
	}
	Home = ensure(tmpls, "home.html")
	About = ensure(tmpls, "about.html")
	Products = ensure(tmpls, "products.html")
	Blog = ensure(tmpls, "blog.html")
	BlogPost = ensure(tmpls, "blog_post.html")
	Momongo = ensure(tmpls, "momongo.html")

	clarityProject = cfg.Analytics.ClarityProjectID
	googleTagID = cfg.Analytics.GoogleTagID
	return nil
}

func ensure(templates *template.Template, name string) *template.Template {
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		panic("template " + name + " not found")
	}
	return tmpl
}

var clarityProject string
var googleTagID string

// ClarityScript generates the Microsoft Clarity tracking script HTML
func ClarityScript() template.HTML {
	if clarityProject == "" {
		return ""
	}

	script := `<script type="text/javascript">
    (function(c,l,a,r,i,t,y){
        c[a]=c[a]||function(){(c[a].q=c[a].q||[]).push(arguments)};
        t=l.createElement(r);t.async=1;t.src="https://www.clarity.ms/tag/"+i;
        y=l.getElementsByTagName(r)[0];y.parentNode.insertBefore(t,y);
    })(window, document, "clarity", "script", "` + clarityProject + `");
</script>`

	return template.HTML(script)
}

// GoogleTagScript generates the Google tag snippet HTML.
func GoogleTagScript() template.HTML {
	if googleTagID == "" {
		return ""
	}

	script := `<script async src="https://www.googletagmanager.com/gtag/js?id=` + googleTagID + `"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());

  gtag('config', '` + googleTagID + `');
</script>`

	return template.HTML(script)
}
