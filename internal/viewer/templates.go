package viewer

// pageTemplate is the Go html/template for the viewer page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-live-reload="{{if .LiveReload}}1{{else}}0{{end}}">
  <nav class="sidebar">
    <div class="sidebar-header">
      <h2>{{.Title}}</h2>
      <span class="manifest-source" title="{{.Source}}">{{.Source}}</span>
      {{if .HasAbout}}<a class="about-link" href="/about">about</a>{{end}}
    </div>
    <ul class="checkplot-list" id="checkplot-list"></ul>
  </nav>
  <main class="content">
    <div class="error-banner" id="error-banner" hidden></div>
    <div class="controls">
      <button id="prev-btn" disabled>&laquo; previous</button>
      <span class="position" id="position"></span>
      <button id="next-btn" disabled>next &raquo;</button>
    </div>
    <div class="plot-pane">
      <img id="checkplot-img" alt="" hidden>
      <p class="placeholder" id="placeholder">Loading checkplots&hellip;</p>
    </div>
  </main>
  <script src="/static/viewer.js"></script>
</body>
</html>`

// aboutTemplate wraps the rendered markdown notes page.
const aboutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>About — {{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <main class="about-content">
    <p><a href="/">&larr; back to viewer</a></p>
    <article>{{.Content}}</article>
  </main>
</body>
</html>`

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --danger: #e03131;
  --danger-light: #fff5f5;
  --sidebar-width: 280px;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  color: var(--text);
  background: var(--bg);
  display: flex;
  height: 100vh;
}

.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  display: flex;
  flex-direction: column;
}

.sidebar-header {
  padding: 16px;
  border-bottom: 1px solid var(--border);
}

.sidebar-header h2 { font-size: 16px; margin-bottom: 4px; }

.manifest-source {
  display: block;
  font-size: 11px;
  color: var(--text-muted);
  overflow: hidden;
  text-overflow: ellipsis;
  white-space: nowrap;
}

.about-link { font-size: 12px; color: var(--accent); }

.checkplot-list {
  list-style: none;
  overflow-y: auto;
  flex: 1;
}

.checkplot-list li {
  padding: 8px 16px;
  font-size: 13px;
  cursor: pointer;
  border-bottom: 1px solid var(--border);
  overflow: hidden;
  text-overflow: ellipsis;
  white-space: nowrap;
}

.checkplot-list li:hover { background: var(--accent-light); }

.checkplot-list li.active {
  background: var(--accent);
  color: #ffffff;
}

.content {
  flex: 1;
  display: flex;
  flex-direction: column;
  overflow: hidden;
}

.controls {
  display: flex;
  align-items: center;
  justify-content: center;
  gap: 24px;
  padding: 12px;
  border-bottom: 1px solid var(--border);
}

.controls button {
  padding: 6px 16px;
  font-size: 14px;
  border: 1px solid var(--border);
  border-radius: 4px;
  background: var(--bg);
  cursor: pointer;
}

.controls button:hover:not(:disabled) { background: var(--accent-light); }
.controls button:disabled { color: var(--text-muted); cursor: default; }

.position { font-size: 14px; min-width: 90px; text-align: center; }

.plot-pane {
  flex: 1;
  display: flex;
  align-items: center;
  justify-content: center;
  overflow: auto;
  padding: 16px;
}

.plot-pane img { max-width: 100%; max-height: 100%; }

.placeholder { color: var(--text-muted); font-size: 15px; }

.error-banner {
  padding: 10px 16px;
  background: var(--danger-light);
  color: var(--danger);
  border-bottom: 1px solid var(--danger);
  font-size: 14px;
}

.about-content {
  max-width: 800px;
  margin: 0 auto;
  padding: 32px 16px;
  line-height: 1.6;
}

.about-content h1, .about-content h2 { margin: 16px 0 8px; }
.about-content p, .about-content ul { margin-bottom: 12px; }
.about-content pre { background: var(--bg-sidebar); padding: 12px; overflow-x: auto; }
`

// jsContent is the page script served at /static/viewer.js. It mirrors
// the navigation state machine: entries plus a current index, wraparound
// prev/next, and a render pass that derives the image, the position
// indicator, and the single active sidebar item from that state alone.
const jsContent = `(function () {
  "use strict";

  var state = { entries: [], idx: 0, ready: false };

  var img = document.getElementById("checkplot-img");
  var list = document.getElementById("checkplot-list");
  var position = document.getElementById("position");
  var placeholder = document.getElementById("placeholder");
  var banner = document.getElementById("error-banner");
  var prevBtn = document.getElementById("prev-btn");
  var nextBtn = document.getElementById("next-btn");

  function render() {
    var n = state.entries.length;
    prevBtn.disabled = !state.ready || n === 0;
    nextBtn.disabled = !state.ready || n === 0;

    list.textContent = "";
    for (var i = 0; i < n; i++) {
      var li = document.createElement("li");
      var e = state.entries[i];
      li.textContent = e.objectid || e.file;
      if (i === state.idx) li.className = "active";
      li.addEventListener("click", gotoIndex.bind(null, i));
      list.appendChild(li);
    }

    if (!state.ready) return;

    if (n === 0) {
      img.hidden = true;
      placeholder.hidden = false;
      placeholder.textContent = "No checkplots in manifest";
      position.textContent = "";
      return;
    }

    var current = state.entries[state.idx];
    img.src = "/checkplots/" + encodeURI(current.file);
    img.alt = current.objectid || current.file;
    img.hidden = false;
    placeholder.hidden = true;
    position.textContent = (state.idx + 1) + " of " + n;
  }

  function gotoIndex(i) {
    if (!state.ready || i < 0 || i >= state.entries.length) return;
    state.idx = i;
    render();
  }

  function next() {
    var n = state.entries.length;
    if (!state.ready || n === 0) return;
    state.idx = (state.idx + 1) % n;
    render();
  }

  function prev() {
    var n = state.entries.length;
    if (!state.ready || n === 0) return;
    state.idx = (state.idx - 1 + n) % n;
    render();
  }

  function showError(message) {
    banner.textContent = message;
    banner.hidden = false;
    placeholder.textContent = "Manifest could not be loaded";
    render();
  }

  function load() {
    fetch("/api/manifest")
      .then(function (resp) {
        return resp.json().then(function (body) {
          if (!resp.ok) throw new Error(body.message || body.error || "load failed");
          return body;
        });
      })
      .then(function (body) {
        state.entries = body.checkplots || [];
        state.idx = 0;
        state.ready = true;
        banner.hidden = true;
        render();
      })
      .catch(function (err) {
        state.ready = false;
        showError(err.message);
      });
  }

  prevBtn.addEventListener("click", prev);
  nextBtn.addEventListener("click", next);

  document.addEventListener("keydown", function (ev) {
    if (ev.key === "ArrowLeft") {
      ev.preventDefault();
      prev();
    } else if (ev.key === "ArrowRight") {
      ev.preventDefault();
      next();
    }
  });

  if (document.body.dataset.liveReload === "1" && "WebSocket" in window) {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var sock = new WebSocket(scheme + location.host + "/ws");
    sock.onmessage = load;
  }

  load();
})();
`
