// internal/handlers/http/page_handler.go
// Halaman dashboard (server-rendered, kontrol via fetch ke /api)

package http

import (
	"html/template"
	"net/http"
)

var pageTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 0; background: #fafafa; }
  nav { background: #1b3a4b; color: #fff; padding: 10px 16px; display: flex; align-items: center; gap: 16px; }
  nav h1 { font-size: 18px; margin: 0; }
  nav button { margin-left: auto; }
  main { padding: 16px; max-width: 1020px; margin: 0 auto; }
  .controls { display: flex; gap: 24px; align-items: center; flex-wrap: wrap; margin-bottom: 12px; }
  .slider { display: flex; flex-direction: column; }
  #notices div { padding: 8px 12px; margin: 6px 0; border-radius: 4px; cursor: pointer; }
  #notices .error { background: #fdd; border: 1px solid #c66; }
  #notices .info { background: #def; border: 1px solid #69c; }
  #loading { display: none; color: #888; }
  #help { display: none; background: #fff; border: 1px solid #ccc; padding: 12px; margin-bottom: 12px; }
  img { background: #fff; border: 1px solid #ddd; max-width: 100%; }
</style>
</head>
<body>
<nav>
  <h1>{{.Title}}</h1>
  <button onclick="toggleHelp()">Help</button>
</nav>
<main>
  <div id="help">
    Pick a well to load its production history and forecast. Use the sliders to
    scale the oil/gas forecast by a percentage; Reset returns the forecast to the
    original values from the service.
  </div>
  <div id="notices"></div>
  <div class="controls">
    <label>Well
      <select id="well" onchange="selectWell()"><option value="">-- select --</option></select>
    </label>
    <div class="slider">
      <label for="oil">Oil forecast: <span id="oilVal">0</span>%</label>
      <input type="range" id="oil" min="-100" max="100" value="0" oninput="adjust()">
    </div>
    <div class="slider">
      <label for="gas">Gas forecast: <span id="gasVal">0</span>%</label>
      <input type="range" id="gas" min="-100" max="100" value="0" oninput="adjust()">
    </div>
    <button onclick="resetForecast()">Reset forecast</button>
    <span id="loading">loading…</span>
  </div>
  <img id="chart" src="/api/chart.png" alt="production chart">
</main>
<script>
function toggleHelp() {
  const h = document.getElementById('help');
  h.style.display = h.style.display === 'block' ? 'none' : 'block';
}
function refreshChart() {
  document.getElementById('chart').src = '/api/chart.png?t=' + Date.now();
}
function refreshNotices() {
  fetch('/api/notices').then(r => r.json()).then(list => {
    const box = document.getElementById('notices');
    box.innerHTML = '';
    (list || []).forEach(n => {
      const d = document.createElement('div');
      d.className = n.level;
      d.textContent = n.message + ' (click to dismiss)';
      d.onclick = () => fetch('/api/notices/' + n.id + '/dismiss', {method: 'POST'})
        .then(refreshNotices);
      box.appendChild(d);
    });
  });
}
function loadWells() {
  fetch('/api/wells').then(r => r.json()).then(list => {
    const sel = document.getElementById('well');
    (list || []).forEach(o => {
      const opt = document.createElement('option');
      opt.value = o.value; opt.textContent = o.label;
      sel.appendChild(opt);
    });
  }).finally(refreshNotices);
}
function selectWell() {
  const id = document.getElementById('well').value;
  if (!id) return;
  document.getElementById('loading').style.display = 'inline';
  document.getElementById('oil').value = 0;
  document.getElementById('gas').value = 0;
  document.getElementById('oilVal').textContent = '0';
  document.getElementById('gasVal').textContent = '0';
  fetch('/api/select/' + encodeURIComponent(id), {method: 'POST'})
    .finally(() => {
      document.getElementById('loading').style.display = 'none';
      refreshChart();
      refreshNotices();
    });
}
function adjust() {
  const oil = document.getElementById('oil').value;
  const gas = document.getElementById('gas').value;
  document.getElementById('oilVal').textContent = oil;
  document.getElementById('gasVal').textContent = gas;
  fetch('/api/adjustments', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({oil_pct: Number(oil), gas_pct: Number(gas)})
  }).then(refreshChart);
}
function resetForecast() {
  fetch('/api/reset', {method: 'POST'}).then(() => {
    document.getElementById('oil').value = 0;
    document.getElementById('gas').value = 0;
    document.getElementById('oilVal').textContent = '0';
    document.getElementById('gasVal').textContent = '0';
    refreshChart();
    refreshNotices();
  });
}
setInterval(refreshNotices, 3000);
loadWells();
</script>
</body>
</html>`))

type pageData struct {
	Title string
}

// PageHandler merender halaman dashboard.
func PageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, pageData{Title: "PDP Well Forecast"}); err != nil {
		logg.WithError(err).Error("render page failed")
	}
}
