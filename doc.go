// Seasonal draws interactive line charts of seasonally decomposed CO2
// concentrations.
//
//
// Data Representation
//
// The input is a JSON document keyed by subplot index. Each subplot maps
// month names to the series of that month:
//      {
//        "1": {
//          "January":  [ {"month": "1958-01-01", "co2": 315.2}, ... ],
//          "February": [ {"month": "1958-02-01", "co2": 316.0}, ... ],
//          ...
//        },
//        "5": { ... }
//      }
// The key order of the document is kept. A Loader reads the document once
// and a Future shares the parsed Dataset with every consumer.
//
//
// Series
//
// ExtractSubplot yields the month series of one subplot, one plot line per
// month. RawSeries stitches the months of a subplot back into the full
// chronological series: position 0 of every month in calendar order, then
// position 1, and so on. All months must have the same length.
//
//
// Charts
//
// A Chart holds the scales, the axes and the grobs (graphical objects) of
// one SVG chart. Its geometry comes from a Config; the two built in presets
// are "narrow" and "wide". Plot lines carry the class "plotline", the raw
// series "rawplot" and tooltips "tooltip", just like the page's style sheet
// expects.
//
//
// Views
//
// A View ties a Chart to a Future and to the seven position slider of the
// page. Slider position n selects subplot SliderTable[n]. Swapping removes
// every plot line and tooltip before the new subplot is drawn.
//
package seasonal
