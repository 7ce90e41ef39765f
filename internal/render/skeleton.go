package render

// skeleton is the shared markup for every style variant. Color tokens come
// from the template's scheme, content tokens from the sanitized request.
// Substitution is global: every occurrence of a token is replaced.
//
// The document references its sibling artifacts by fixed relative names
// (./resume.pdf, ./headshot.jpg), so the orchestrator must commit them
// under exactly those paths.
const skeleton = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="keywords" content="{keywords}">
<meta name="description" content="{tagline}">
<title>{name} | {profession}</title>
<style>
:root {
  --bg: {color-bg};
  --surface: {color-surface};
  --text: {color-text};
  --muted: {color-muted};
  --accent: {color-accent};
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: "Segoe UI", system-ui, sans-serif; background: var(--bg); color: var(--text); line-height: 1.6; }
main { max-width: 900px; margin: 0 auto; padding: 2rem 1.25rem; }
header.hero { text-align: center; padding: 3rem 1rem 2rem; }
header.hero img.headshot { width: 140px; height: 140px; border-radius: 50%; object-fit: cover; border: 3px solid var(--accent); }
header.hero h1 { font-size: 2.4rem; margin-top: 1rem; }
header.hero h2 { font-size: 1.2rem; color: var(--accent); font-weight: 500; }
header.hero p.tagline { color: var(--muted); margin-top: 0.5rem; }
section { background: var(--surface); border-radius: 10px; padding: 1.5rem; margin-top: 1.5rem; }
section h2 { color: var(--accent); font-size: 1.3rem; margin-bottom: 0.75rem; }
.skill { margin-bottom: 0.9rem; }
.skill .skill-name { display: inline-block; margin-bottom: 0.25rem; }
.skill .bar { background: var(--bg); border-radius: 4px; height: 8px; overflow: hidden; }
.skill .fill { background: var(--accent); height: 100%; }
article.project { border-left: 3px solid var(--accent); padding-left: 1rem; margin-bottom: 1.25rem; }
article.project .category { color: var(--muted); font-size: 0.85rem; }
article.project a { color: var(--accent); }
ul.contact { list-style: none; }
ul.contact a { color: var(--accent); text-decoration: none; }
footer { text-align: center; color: var(--muted); padding: 2rem 0 1rem; font-size: 0.85rem; }
</style>
</head>
<body>
<main>
<header class="hero">
<img class="headshot" src="./headshot.jpg" alt="{name}">
<h1>{name}</h1>
<h2>{profession}</h2>
<p class="tagline">{tagline}</p>
</header>
<section id="summary">
<h2>Summary</h2>
<p>{summary}</p>
</section>
<section id="about">
<h2>About Me</h2>
<p>{about}</p>
</section>
<section id="skills">
<h2>Skills</h2>
{skills}
</section>
<section id="projects">
<h2>Projects</h2>
{projects}
</section>
<section id="contact">
<h2>Contact</h2>
<ul class="contact">
<li>Email: <a href="mailto:{email}">{email}</a></li>
<li>Phone: {phone}</li>
<li>LinkedIn: <a href="{linkedin}">{linkedin}</a></li>
<li><a href="./resume.pdf">Download Resume</a></li>
</ul>
</section>
<footer>&copy; {name}</footer>
</main>
</body>
</html>
`
