// Command datagen writes a year of synthetic per-day consumption rows
// plus the matching holiday schedule, in the CSV layout the import
// endpoints accept. Useful for seeding a dev database and for trying
// the suggestion pipeline without real mess data.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

var breakfastItems = []string{
	"Masala Dosa", "Plain Dosa", "Rava Dosa", "Onion Dosa",
	"Idli", "Rava Idli", "Medu Vada", "Uttapam",
	"Aloo Paratha", "Gobi Paratha", "Paneer Paratha", "Methi Paratha", "Mixed Paratha",
	"Puri Bhaji", "Chole Puri",
	"Poha", "Upma", "Vermicelli Upma", "Semiya Upma",
	"Sabudana Khichdi", "Daliya",
	"Chole Bhature", "Samosa", "Vada Pav", "Pav Bhaji",
	"Bread Pakora", "Besan Chilla",
}

var lunchItems = []string{
	"Steamed Rice", "Jeera Rice", "Veg Pulao", "Lemon Rice",
	"Tomato Rice", "Curd Rice", "Coconut Rice", "Biryani",
	"Dal Tadka", "Dal Fry", "Dal Makhani", "Moong Dal",
	"Masoor Dal", "Toor Dal", "Chana Dal", "Panchmel Dal",
	"Rajma", "Chole", "Kadhi Pakora", "Aloo Matar",
	"Mix Veg Curry", "Bhindi Masala", "Lauki Kofta",
	"Palak Paneer", "Matar Paneer", "Shahi Paneer",
	"Aloo Gobi", "Baingan Bharta", "Veg Kofta Curry",
}

var dinnerItems = []string{
	"Tawa Roti", "Tandoori Roti", "Butter Naan", "Garlic Naan",
	"Missi Roti", "Laccha Paratha", "Rumali Roti",
	"Paneer Tikka Masala", "Kadai Paneer", "Paneer Butter Masala",
	"Malai Kofta", "Veg Kolhapuri", "Mushroom Masala",
	"Bhindi Fry", "Aloo Jeera", "Gobi Manchurian",
	"Dal Makhani", "Chana Masala", "Mixed Veg Curry",
	"Paneer Lababdar", "Veg Jalfrezi", "Paneer Do Pyaza",
	"Jeera Aloo", "Aloo Methi", "Bhindi Do Pyaza",
	"Gobhi Masala", "Tawa Vegetables",
}

type holidaySpan struct {
	name       string
	start, end string // YYYY-MM-DD
}

var holidaySpans = []holidaySpan{
	{"Independence Day", "2024-08-15", "2024-08-15"},
	{"Gandhi Jayanti", "2024-10-02", "2024-10-02"},
	{"Navratri", "2024-10-03", "2024-10-11"},
	{"Diwali", "2024-10-26", "2024-11-03"},
	{"Christmas", "2024-12-22", "2024-12-31"},
	{"New Year's Day", "2025-01-01", "2025-01-07"},
	{"Holi", "2025-03-21", "2025-03-27"},
	{"Independence Day", "2025-08-15", "2025-08-15"},
}

// specialMenus replaces the random draw on days inside the named
// festival spans.
var specialMenus = map[string]map[string][]string{
	"Navratri": {
		"breakfast": {"Sabudana Khichdi", "Fruit Salad", "Kuttu Puri"},
		"lunch":     {"Samak Rice", "Kaddu Curry", "Aloo Jeera"},
		"dinner":    {"Kuttu Roti", "Paneer", "Lauki Curry"},
	},
	"Diwali": {
		"breakfast": {"Special Poha", "Mixed Pakoras", "Methi Puri"},
		"lunch":     {"Veg Biryani", "Paneer Makhani", "Special Dal"},
		"dinner":    {"Masala Puri", "Malai Kofta", "Shahi Paneer"},
	},
	"Christmas": {
		"breakfast": {"Plum Cake", "Fruit Cake", "Special Upma"},
		"lunch":     {"Veg Pulao", "Special Curry", "Paneer Butter Masala"},
		"dinner":    {"Butter Naan", "Special Gravy", "Mixed Vegetables"},
	},
	"Holi": {
		"breakfast": {"Gujiya", "Malpua", "Dahi Vada"},
		"lunch":     {"Special Pulao", "Kadhi Pakora", "Mix Veg"},
		"dinner":    {"Puri", "Shahi Paneer", "Dal Makhani"},
	},
}

func holidayName(day time.Time) string {
	for _, h := range holidaySpans {
		start, _ := time.Parse("2006-01-02", h.start)
		end, _ := time.Parse("2006-01-02", h.end)
		if !day.Before(start) && !day.After(end) {
			return h.name
		}
	}
	return ""
}

// quantity layers weekend, holiday and season multipliers on a normal
// draw around the base amount.
func quantity(rng *rand.Rand, base float64, holiday bool, day time.Time) float64 {
	randomFactor := 1 + rng.NormFloat64()*0.08

	weekendFactor := 1.0
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		weekendFactor = 1.15
	}

	holidayFactor := 1.0
	if holiday {
		holidayFactor = 1.3
	}

	seasonFactor := 1.0
	switch day.Month() {
	case time.December, time.January, time.February:
		seasonFactor = 1.1
	case time.May, time.June, time.July:
		seasonFactor = 0.9
	}

	return base * randomFactor * holidayFactor * weekendFactor * seasonFactor
}

func pickDishes(rng *rand.Rand, pool []string, n int) []string {
	perm := rng.Perm(len(pool))
	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

func mealColumns(rng *rand.Rand, pool []string, special []string, bases []float64, holiday bool, day time.Time) (string, string) {
	dishes := special
	if len(dishes) == 0 {
		dishes = pickDishes(rng, pool, len(bases))
	}

	kg := make([]string, len(bases))
	for i, base := range bases {
		base *= 0.95 + rng.Float64()*0.10
		kg[i] = fmt.Sprintf("%.2f", quantity(rng, base, holiday, day))
	}
	return strings.Join(dishes, ";"), strings.Join(kg, ";")
}

func main() {
	var (
		out        = flag.String("out", "food_consumption.csv", "consumption CSV path")
		holidayOut = flag.String("holidays", "holidays.csv", "holiday schedule CSV path")
		startFlag  = flag.String("start", "21/08/2024", "first day (DD/MM/YYYY)")
		endFlag    = flag.String("end", "20/08/2025", "last day (DD/MM/YYYY)")
		seed       = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	start, err := time.Parse(consumption.DateLayout, *startFlag)
	if err != nil {
		log.Fatal("bad -start:", err)
	}
	end, err := time.Parse(consumption.DateLayout, *endFlag)
	if err != nil {
		log.Fatal("bad -end:", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{
		"month_year", "week", "date",
		"breakfast_items", "breakfast_kg",
		"lunch_items", "lunch_kg",
		"dinner_items", "dinner_kg",
	})

	rows := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		name := holidayName(day)
		isHoliday := name != ""

		bItems, bKg := mealColumns(rng, breakfastItems, specialMenus[name]["breakfast"], []float64{70, 65, 75}, isHoliday, day)
		lItems, lKg := mealColumns(rng, lunchItems, specialMenus[name]["lunch"], []float64{270, 260, 210}, isHoliday, day)
		dItems, dKg := mealColumns(rng, dinnerItems, specialMenus[name]["dinner"], []float64{300, 290, 300}, isHoliday, day)

		w.Write([]string{
			consumption.MonthYearLabel(day),
			fmt.Sprintf("week%d", consumption.WeekOfMonth(day)),
			day.Format(consumption.DateLayout),
			bItems, bKg,
			lItems, lKg,
			dItems, dKg,
		})
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}

	hf, err := os.Create(*holidayOut)
	if err != nil {
		log.Fatal(err)
	}
	defer hf.Close()

	hw := csv.NewWriter(hf)
	hw.Write([]string{"Holiday", "Start Date", "End Date"})
	for _, h := range holidaySpans {
		s, _ := time.Parse("2006-01-02", h.start)
		e, _ := time.Parse("2006-01-02", h.end)
		hw.Write([]string{
			h.name,
			s.Format(consumption.DateLayout),
			e.Format(consumption.DateLayout),
		})
	}
	hw.Flush()
	if err := hw.Error(); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %d day rows to %s, %d holidays to %s", rows, *out, len(holidaySpans), *holidayOut)
}
