package server

type IndexModel struct {
	Title        string
	Preset       string
	MaxPosition  int
	TooltipShift float64
}

const index_html = `<!DOCTYPE html>
<html><head>
<meta charset="utf-8">
<title>{{ .Title }} ({{ .Preset }})</title>
<style>
	#seasonal-d3 { max-width: 800px; }
	.svgd3 .plotline.highlighted { stroke: #d62728; stroke-width: 2.5; }
	.svgd3 .tooltip { pointer-events: none; font: 12px sans-serif; }
	.svgd3 .textbg { fill: #fff; fill-opacity: 0.8; }
	.svgd3 .tick line { stroke-opacity: 0.5; }
	#error { color: #b00; }
</style>

<script type="module">

const shift = {{ .TooltipShift }};
const container = document.getElementById("seasonal-d3");
const slider = document.getElementById("nsubp");
const errorBox = document.getElementById("error");

function wire() {
	for (const path of container.querySelectorAll("path.plotline[data-tooltip]")) {
		const tooltip = document.getElementById(path.dataset.tooltip);
		path.addEventListener("pointerenter", ev => {
			path.classList.add("highlighted");
			tooltip.setAttribute("transform", ` + "`translate(${ev.offsetX - shift}, ${ev.offsetY})`" + `);
			tooltip.setAttribute("visibility", "visible");
		});
		path.addEventListener("pointerleave", () => {
			path.classList.remove("highlighted");
			tooltip.setAttribute("visibility", "hidden");
		});
	}
}

let latest = 0;

function show(url) {
	const seq = ++latest;
	fetch(url)
		.then(response => {
			if (!response.ok) {
				return response.json().then(body => { throw new Error(body.error); });
			}
			return response.text();
		})
		.then(svg => {
			if (seq !== latest) {
				return;
			}
			container.innerHTML = svg;
			errorBox.textContent = "";
			wire();
		})
		.catch(err => { errorBox.textContent = err.message; });
}

slider.addEventListener("input", () => show("api/v1/subplot?nsubp=" + slider.value));
show("api/v1/chart");

</script>
</head>
<body>
	<div id="seasonal-d3"></div>
	<input type="range" id="nsubp" min="0" max="{{ .MaxPosition }}" step="1" value="0">
	<p id="error"></p>
</body>
</html>
`
