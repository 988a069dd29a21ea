package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"catchlog/internal/models"
	"catchlog/internal/view"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "catchlogd base URL")
	page := flag.Int("page", 1, "table page to display")
	sortCol := flag.String("sort", "", "sort column: species|weight|length|date|time|location|bait")
	desc := flag.Bool("desc", false, "sort descending")
	flag.Parse()

	v := view.New(view.NewHTTPCollaborator(*server))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "", "list":
		runList(ctx, v, *page, *sortCol, *desc)
	case "stats":
		runStats(ctx, v)
	case "add":
		runAdd(ctx, v, flag.Args()[1:])
	default:
		fmt.Fprintf(os.Stderr, "catchlog: unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
}

func runList(ctx context.Context, v *view.View, page int, sortCol string, desc bool) {
	v.Refresh(ctx)
	failOnErrors(v)

	if sortCol != "" {
		col, ok := columnByName(sortCol)
		if !ok {
			fmt.Fprintf(os.Stderr, "catchlog: unknown sort column %q\n", sortCol)
			os.Exit(2)
		}
		v.ToggleSort(col)
		if desc {
			v.ToggleSort(col)
		}
	}
	v.SetPage(page)

	s := v.Summary()
	fmt.Printf("Total Catches: %d\n", s.TotalCatches)
	fmt.Printf("Total Weight:  %s\n", view.FormatWeight(s.TotalWeight))
	fmt.Printf("Avg Weight:    %s\n", view.FormatWeight(s.AverageWeight))
	fmt.Printf("Biggest Fish:  %s\n\n", view.BiggestFishCard(s))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tWEIGHT\tLENGTH\tDATE\tTIME\tLOCATION\tBAIT")
	for _, rec := range v.VisibleRecords() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			view.FormatSpeciesTag(rec.Species),
			view.FormatWeight(rec.Weight),
			view.FormatLength(rec.Length),
			view.FormatDate(rec.DateCaught),
			view.FormatTimeOfDay(rec.TimeOfDay),
			rec.Location,
			rec.Bait,
		)
	}
	w.Flush()
}

func runStats(ctx context.Context, v *view.View) {
	v.Refresh(ctx)
	failOnErrors(v)

	s := v.Summary()
	fmt.Printf("Total Catches: %d\n", s.TotalCatches)
	fmt.Printf("Total Weight:  %s\n", view.FormatWeight(s.TotalWeight))
	fmt.Printf("Avg Weight:    %s\n", view.FormatWeight(s.AverageWeight))
	fmt.Printf("Biggest Fish:  %s\n", view.BiggestFishCard(s))
}

func runAdd(ctx context.Context, v *view.View, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	species := fs.String("species", "", "species (required)")
	weight := fs.Float64("weight", -1, "weight in pounds (required)")
	length := fs.Float64("length", -1, "length in inches")
	location := fs.String("location", "", "location (required)")
	date := fs.String("date", "", "date caught, YYYY-MM-DD (required)")
	timeOfDay := fs.String("time", "", "time of day: morning|afternoon|evening|night")
	weather := fs.String("weather", "", "weather: sunny|cloudy|rainy|overcast|windy")
	bait := fs.String("bait", "", "bait used")
	notes := fs.String("notes", "", "free-form notes")
	fs.Parse(args)

	form := view.FormValues{
		Species:   *species,
		Location:  *location,
		TimeOfDay: *timeOfDay,
		Weather:   *weather,
		Bait:      *bait,
		Notes:     *notes,
	}
	if *weight >= 0 {
		form = form.WithWeight(*weight)
	}
	if *length >= 0 {
		form = form.WithLength(*length)
	}
	if *date != "" {
		d, err := models.ParseDate(*date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catchlog: %s\n", err)
			os.Exit(2)
		}
		form.DateCaught = &d
	}

	v.OpenForm()
	v.EditForm(form)

	if errs := v.SubmitNewCatch(ctx); len(errs) > 0 {
		for _, fe := range errs {
			fmt.Fprintf(os.Stderr, "catchlog: %s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(2)
	}
	failOnErrors(v)

	fmt.Printf("Catch logged. Total catches: %d\n", v.Summary().TotalCatches)
}

func failOnErrors(v *view.View) {
	for _, n := range v.State().Notices {
		if n.Kind == view.NoticeError {
			fmt.Fprintf(os.Stderr, "catchlog: %s\n", n.Message)
			os.Exit(1)
		}
	}
}

func columnByName(name string) (view.Column, bool) {
	switch name {
	case "species":
		return view.ColSpecies, true
	case "weight":
		return view.ColWeight, true
	case "length":
		return view.ColLength, true
	case "date":
		return view.ColDate, true
	case "time":
		return view.ColTimeOfDay, true
	case "location":
		return view.ColLocation, true
	case "bait":
		return view.ColBait, true
	}
	return 0, false
}
