package pages

// layoutTemplate wraps every page with the header, mobile menu and footer.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | Pine Coast BBQ</title>
  <style>` + cssContent + `</style>
</head>
<body>
  <header class="site-header">
    <div class="container header-row">
      <a class="brand" href="{{.BasePath}}">
        {{if .LogoURL}}<img src="{{.LogoURL}}" alt="Pine Coast BBQ Logo" class="logo">{{end}}
        <span class="brand-name">Pine Coast BBQ</span>
      </a>
      <nav class="nav-desktop">
        {{range .Nav}}<a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>{{end}}
      </nav>
      <a class="menu-toggle" href="{{.ToggleHref}}" aria-label="Toggle menu" aria-expanded="{{.MenuOpen}}">
        {{if .MenuOpen}}` + closeIcon + `{{else}}` + menuIcon + `{{end}}
      </a>
    </div>
    {{if or .MenuOpen .StaticMenu}}
    <nav class="nav-mobile{{if .StaticMenu}} nav-target{{end}}" id="mobile-nav">
      {{range .Nav}}<a href="{{.Href}}" class="nav-mobile-link">{{.Label}}</a>{{end}}
    </nav>
    {{end}}
  </header>
  <main>
    {{.Body}}
  </main>
  <footer class="site-footer">
    <div class="container">
      <p>&copy; {{.Year}} Pine Coast BBQ. All Rights Reserved.</p>
      <p class="muted">Lisbon, Maine</p>
      <a href="https://www.instagram.com/pinecoastbbq?igsh=M3BwMmN3eHYwZzhw" target="_blank" rel="noopener noreferrer" class="social" aria-label="Instagram">` + instagramIcon + `</a>
    </div>
  </footer>
</body>
</html>{{end}}`

const homeTemplate = `{{define "home"}}
<section class="hero" id="hero" style="background-image: linear-gradient(rgba(0,0,0,0.6), rgba(0,0,0,0.6)), url('{{.Hero.Current}}');">
  <div class="hero-text">
    <h2>{{.Page.Heading}}</h2>
    <p>Slow-smoked perfection, crafted with passion and local hardwoods.</p>
  </div>
</section>
<section class="section section-grey">
  <div class="container center">
    <h3 class="section-title">Taste the Tradition</h3>
    <div class="lead">{{.Copy.Home}}</div>
    <div class="cards">
      <a class="card" href="{{.BasePath}}menu/"><h4 class="brisket">Tender Brisket</h4><p>12-hour smoked, hand-sliced, and served with our signature sauce.</p></a>
      <a class="card" href="{{.BasePath}}menu/"><h4 class="pork">Pulled Pork</h4><p>Fall-apart tender pork shoulder, perfect in a sandwich or on its own.</p></a>
      <a class="card" href="{{.BasePath}}menu/"><h4 class="ribs">Savory Ribs</h4><p>St. Louis style ribs, glazed with a sweet and tangy finish.</p></a>
    </div>
  </div>
</section>
<script>
(function () {
  var hero = {{.Hero}};
  var el = document.getElementById('hero');
  if (!el || !hero.Images || hero.Images.length < 2) { return; }
  var idx = hero.Index;
  function show(i) {
    idx = i % hero.Images.length;
    el.style.backgroundImage = "linear-gradient(rgba(0,0,0,0.6), rgba(0,0,0,0.6)), url('" + hero.Images[idx] + "')";
  }
  var timer = null;
  function local() {
    if (timer === null) { timer = setInterval(function () { show(idx + 1); }, hero.PeriodMS); }
  }
  if (!hero.Socket || !window.WebSocket) { local(); return; }
  var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + hero.Socket);
  ws.onmessage = function (ev) { show(JSON.parse(ev.data).index); };
  ws.onerror = local;
  window.addEventListener('pagehide', function () { ws.close(); });
})();
</script>
{{end}}`

const menuTemplate = `{{define "menu"}}
<section class="section section-light">
  <div class="container narrow">
    <h2 class="page-title">{{.Page.Heading}}</h2>
    <div class="intro">{{range .Menu.Introduction}}<p>{{.}}</p>{{end}}</div>
    {{range .Menu.Categories}}
    <div class="category">
      <h3>{{.Title}}</h3>
      {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
      {{if eq .Layout "grid"}}
      <div class="option-grid">{{range .Options}}<div class="option"><p>{{.}}</p></div>{{end}}</div>
      {{else if eq .Layout "columns"}}
      <p class="option-columns">{{range .Options}}<span>{{.}}</span>{{end}}</p>
      {{else}}
      <div class="items">
        {{range .Items}}
        <div class="item">
          <div class="item-head"><h4>{{.Name}}</h4>{{if .Price}}<p class="price">{{.Price}}</p>{{end}}</div>
          <p class="item-desc">{{range $i, $l := .DescriptionLines}}{{if $i}}<br>{{end}}{{$l}}{{end}}</p>
        </div>
        {{end}}
        {{range .Options}}<p>{{.}}</p>{{end}}
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}`

const storyTemplate = `{{define "story"}}
<section class="section section-white">
  <div class="container">
    <h2 class="page-title">{{.Page.Heading}}</h2>
    <div class="story">
      {{if .StoryImage}}<div class="story-image"><img src="{{.StoryImage}}" alt="Our Smoker"></div>{{end}}
      <div class="story-text">{{.Copy.Story}}</div>
    </div>
  </div>
</section>
{{end}}`

const contactTemplate = `{{define "contact"}}
<section class="section section-grey">
  <div class="container">
    <div class="contact-card">
      <h2 class="page-title green">{{.Page.Heading}}</h2>
      <div class="center muted">{{.Copy.Contact}}</div>
      <form id="contact-form" method="post" action="{{.Contact.Action}}">
        <label for="name">Full Name</label>
        <input type="text" name="name" id="name" value="{{.Contact.Form.Name}}" placeholder="John Doe" required>
        <label for="email">Email Address</label>
        <input type="email" name="email" id="email" value="{{.Contact.Form.Email}}" placeholder="you@example.com" required>
        <label for="message">Message</label>
        <textarea name="message" id="message" rows="5" placeholder="Your message here..." required>{{.Contact.Form.Message}}</textarea>
        <button type="submit" id="contact-submit"{{if .Contact.Sending}} disabled{{end}}>Send Message</button>
      </form>
      <div id="contact-status" class="status status-{{.Contact.Status.Kind}}"{{if not .Contact.Status.Message}} hidden{{end}}>{{.Contact.Status.Message}}</div>
    </div>
  </div>
</section>
{{if .Contact.APIEndpoint}}
<script>
(function () {
  var endpoint = {{.Contact.APIEndpoint}};
  var form = document.getElementById('contact-form');
  var button = document.getElementById('contact-submit');
  var status = document.getElementById('contact-status');
  function setStatus(kind, message) {
    status.hidden = false;
    status.className = 'status status-' + kind;
    status.textContent = message;
  }
  form.addEventListener('submit', function (e) {
    e.preventDefault();
    if (button.disabled) { return; }
    button.disabled = true;
    setStatus('info', 'Sending...');
    var data = { name: form.name.value, email: form.email.value, message: form.message.value };
    fetch(endpoint, { method: 'POST', headers: { 'Content-Type': 'application/json' }, body: JSON.stringify(data) })
      .then(function (resp) {
        if (resp.ok) {
          setStatus('success', 'Success! We will get back to you soon.');
          form.reset();
          return;
        }
        return resp.json().then(function (body) {
          setStatus('error', 'Error: ' + ((body && body.error) || 'Something went wrong.'));
        }, function () {
          setStatus('error', 'Error: Something went wrong.');
        });
      }, function () {
        setStatus('error', 'Error: Could not connect to the server.');
      })
      .then(function () { button.disabled = false; });
  });
})();
</script>
{{end}}
{{end}}`

const menuIcon = `<svg xmlns="http://www.w3.org/2000/svg" class="icon" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16m-7 6h7"/></svg>`

const closeIcon = `<svg xmlns="http://www.w3.org/2000/svg" class="icon" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M6 18L18 6M6 6l12 12"/></svg>`

const instagramIcon = `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><rect x="2" y="2" width="20" height="20" rx="5" ry="5"></rect><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"></path><line x1="17.5" y1="6.5" x2="17.51" y2="6.5"></line></svg>`

// cssContent is the site stylesheet, inlined into every page.
const cssContent = `
:root { --green: #05412b; --gold: #bf9000; --charcoal: #2d2c2c; --leaf: #6aa84f; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: #f9fafb; color: var(--charcoal); }
a { color: inherit; text-decoration: none; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.narrow { max-width: 56rem; }
.center { text-align: center; }
.muted { color: #6b7280; }
.icon { width: 1.5rem; height: 1.5rem; }
.site-header { background: rgba(5,65,43,0.95); color: #fff; position: sticky; top: 0; z-index: 50; box-shadow: 0 4px 6px rgba(0,0,0,0.2); }
.header-row { display: flex; justify-content: space-between; align-items: center; padding-top: 1rem; padding-bottom: 1rem; }
.brand { display: flex; align-items: center; }
.logo { height: 3rem; width: auto; }
.brand-name { font-family: Georgia, serif; font-size: 1.875rem; font-weight: 700; color: var(--gold); letter-spacing: 0.05em; margin-left: 0.75rem; }
.nav-desktop { display: flex; gap: 1.5rem; }
.nav-link { font-size: 1.125rem; transition: color 0.3s; }
.nav-link:hover, .nav-link.active { color: var(--gold); }
.menu-toggle { display: none; }
.nav-mobile { display: flex; flex-direction: column; align-items: center; padding: 0.5rem 1rem 1rem; }
.nav-mobile-link { width: 100%; text-align: center; padding: 0.5rem; border-radius: 0.375rem; }
.nav-mobile-link:hover { background: #166534; }
@media (max-width: 767px) {
  .nav-desktop { display: none; }
  .menu-toggle { display: block; }
}
.nav-target { display: none; }
.nav-target:target { display: flex; }
@media (min-width: 768px) { .nav-mobile, .nav-target:target { display: none; } }
.hero { height: 60vh; background-size: cover; background-position: center; color: #fff; display: flex; align-items: center; justify-content: center; transition: all 1s; }
.hero-text { text-align: center; padding: 0 1rem; }
.hero-text h2 { font-family: Georgia, serif; font-size: 4rem; font-weight: 800; margin: 0 0 1rem; text-shadow: 0 4px 12px rgba(0,0,0,0.6); }
.hero-text p { font-size: 1.5rem; max-width: 42rem; margin: 0 auto; }
.section { padding: 4rem 0; }
.section-grey { background: #f3f4f6; }
.section-light { background: #f9fafb; }
.section-white { background: #fff; }
.section-title { font-size: 2.25rem; color: var(--green); margin-bottom: 2rem; }
.page-title { text-align: center; font-family: Georgia, serif; font-size: 3rem; margin-bottom: 2rem; }
.page-title.green { color: var(--green); font-size: 2.25rem; margin-bottom: 0.5rem; }
.lead { font-size: 1.125rem; max-width: 48rem; margin: 0 auto 2.5rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); gap: 2rem; }
.card { background: #fff; padding: 1.5rem; border-radius: 0.5rem; box-shadow: 0 4px 6px rgba(0,0,0,0.1); transition: transform 0.3s; }
.card:hover { transform: translateY(-0.5rem); }
.card h4 { font-size: 1.5rem; margin: 0 0 0.75rem; }
.brisket { color: var(--leaf); } .pork { color: #45818e; } .ribs { color: #cc0000; }
.intro { text-align: center; margin-bottom: 3rem; }
.category { margin-bottom: 3rem; }
.category h3 { font-size: 1.875rem; color: var(--green); border-bottom: 2px solid rgba(5,65,43,0.3); padding-bottom: 0.5rem; margin-bottom: 0.5rem; }
.subtitle { font-style: italic; color: #4b5563; margin-bottom: 1.5rem; }
.items { display: flex; flex-direction: column; gap: 1.5rem; }
.item-head { display: flex; justify-content: space-between; align-items: baseline; }
.item-head h4 { font-size: 1.25rem; margin: 0; }
.price { white-space: nowrap; padding-left: 1rem; }
.item-desc { color: #4b5563; margin-top: 0.25rem; }
.option-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(10rem, 1fr)); gap: 1rem; text-align: center; }
.option { background: #fff; padding: 0.75rem; border-radius: 0.5rem; font-weight: 600; }
.option-columns { columns: 3 12rem; column-gap: 2rem; }
.option-columns span { display: block; margin-bottom: 0.25rem; }
.story { display: flex; flex-wrap: wrap; align-items: center; gap: 2.5rem; }
.story-image, .story-text { flex: 1 1 24rem; }
.story-image img { width: 100%; height: auto; border-radius: 0.5rem; box-shadow: 0 20px 25px rgba(0,0,0,0.15); }
.story-text { font-size: 1.125rem; }
.contact-card { max-width: 42rem; margin: 0 auto; background: #fff; padding: 2rem; border-radius: 0.75rem; box-shadow: 0 10px 15px rgba(0,0,0,0.1); }
.contact-card label { display: block; margin: 1.25rem 0 0.5rem; font-size: 0.875rem; font-weight: 500; }
.contact-card input, .contact-card textarea { width: 100%; padding: 0.5rem 1rem; border: 1px solid #d1d5db; border-radius: 0.5rem; font: inherit; }
.contact-card button { width: 100%; margin-top: 1.5rem; background: var(--leaf); color: #fff; font-weight: 700; padding: 0.75rem 1rem; border: 0; border-radius: 0.5rem; cursor: pointer; }
.contact-card button:hover { background: #5a9142; }
.contact-card button[disabled] { opacity: 0.6; cursor: wait; }
.status { margin-top: 1rem; text-align: center; padding: 0.75rem; border-radius: 0.5rem; }
.status-success { background: #dcfce7; color: #166534; }
.status-error { background: #fee2e2; color: #991b1b; }
.status-info { background: #dbeafe; color: #1e40af; }
.site-footer { background: var(--charcoal); color: #fff; text-align: center; padding: 2rem 0; }
.social { display: inline-flex; margin-top: 1rem; color: #9ca3af; }
.social:hover { color: #fff; }
`
