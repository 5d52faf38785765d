package analysis

import (
	"encoding/json"
	"fmt"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bandit-rl-test/util"
)

// LinePlotter plots each experiment's per-step dataset as a line and saves
// the figure to savePath/<fileName>.png. Expects []float64 datasets.
func LinePlotter(title, xLabel, yLabel, savePath, fileName string) Comparator {
	util.EnsureDir(savePath)
	return func(names []string, datasets []DataSet) {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = xLabel
		p.Y.Label.Text = yLabel
		for i := 0; i < len(names); i++ {
			values := datasets[i].([]float64)
			points := make(plotter.XYs, len(values))
			for step, v := range values {
				points[step] = plotter.XY{
					X: float64(step),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(savePath, fileName+".png"))
	}
}

// JSONRecorder writes each experiment's dataset to
// savePath/<name>_<suffix>.json
func JSONRecorder(savePath, suffix string) Comparator {
	util.EnsureDir(savePath)
	return func(names []string, datasets []DataSet) {
		for i, name := range names {
			bs, err := json.Marshal(datasets[i])
			if err != nil {
				fmt.Printf("failed to marshal dataset for %s: %v\n", name, err)
				continue
			}
			filePath := path.Join(savePath, name+"_"+suffix+".json")
			if err := util.WriteToFile(filePath, string(bs)); err != nil {
				fmt.Printf("failed to record dataset for %s: %v\n", name, err)
			}
		}
	}
}
