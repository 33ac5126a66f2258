package mockapi

import (
	"fmt"
	"math/rand"
	"time"

	"auctionfront/internal/domain"
)

// Titles used to populate the development catalog, a handful per category.
var catalogTitles = map[domain.AuctionCategory][]string{
	domain.CategoryElectronics: {
		"Vintage Sony Walkman TPS-L2",
		"Leica M6 rangefinder camera",
		"Nintendo Game Boy Color, boxed",
		"Macintosh Classic II computer",
		"Bang & Olufsen Beoplay A9",
		"First-generation iPhone, sealed",
		"Sony a7 IV mirrorless camera",
		"16-inch MacBook Pro M1 Max",
	},
	domain.CategoryClothing: {
		"Supreme box logo hoodie",
		"1960s Levi's 501 Big E",
		"Jordan 1 High Chicago",
		"Burberry vintage trench coat",
		"Arc'teryx Alpha SV jacket",
		"Chanel classic medium bag",
		"Stone Island crinkle reps down jacket",
		"Polo Ralph Lauren bear knit",
	},
	domain.CategoryPottery: {
		"White porcelain moon jar",
		"Goryeo celadon maebyeong reproduction",
		"Buncheong stoneware jar",
		"Wedgwood Queen's Ware set",
		"Royal Copenhagen full lace plate",
		"Traditional onggi jar, 50 years old",
		"Joseon white porcelain bottle",
		"Heritage line ceramic tableware",
	},
	domain.CategoryAppliances: {
		"Smeg retro toaster, cream",
		"Dyson Airwrap Complete Long",
		"Balmuda The Toaster Pro",
		"Roborock S8 Pro Ultra",
		"De'Longhi Icona vintage espresso machine",
		"KitchenAid stand mixer",
		"Breville 870 espresso machine",
		"Nespresso Vertuo Pop",
	},
	domain.CategoryBedding: {
		"Hotel goose-down bedding set, king",
		"Tempur-Pedic original pillow",
		"Eiderdown duvet filling",
		"Simmons Beautyrest mattress",
		"60-count sateen bedding",
		"Organic cotton duvet cover",
		"Linen summer blanket",
		"Premium wool throw",
	},
	domain.CategoryBooks: {
		"Harry Potter first edition, first printing",
		"The Lord of the Rings hardcover set",
		"Slam Dunk complete original run",
		"World literature collection, 100 volumes",
		"Signed first-edition novel",
		"Limited-issue Marvel comics",
		"Magazine B complete set",
		"Penguin Classics collection",
	},
	domain.CategoryCollectibles: {
		"1980s Star Wars figures, sealed",
		"Bearbrick 1000% limited edition",
		"LEGO UCS Millennium Falcon",
		"First-edition Charizard card",
		"Signed Michael Jordan jersey",
		"Vintage Rolex Submariner",
		"Stamp album 1970-1990",
		"Original movie poster, signed",
	},
	domain.CategoryEtc: {
		"Martin D-45 acoustic guitar",
		"Fender Stratocaster Custom Shop",
		"Astronomical telescope, pro grade",
		"DJI Mavic 3 Pro drone",
		"Snow Peak Land Lock tent",
		"Coleman vintage lantern",
		"Brompton P Line bicycle",
		"Yamaha grand piano",
	},
}

const catalogSellerCount = 5

// GenerateCatalog builds the in-memory auction catalog the mock backend
// starts with. The same seed always yields the same category, price, and
// status distribution; item ids are assigned in category order.
func GenerateCatalog(seed int64, now time.Time) []domain.AuctionItem {
	rng := rand.New(rand.NewSource(seed))
	day := 24 * time.Hour

	var items []domain.AuctionItem
	id := int64(0)
	for _, cat := range domain.Categories() {
		for i, title := range catalogTitles[cat] {
			id++

			// Status mix by position so each category has a bit of everything.
			status := domain.AuctionActive
			switch {
			case i%5 == 0:
				status = domain.AuctionEnded
			case i%4 == 0:
				status = domain.AuctionScheduled
			case i%7 == 0:
				status = domain.AuctionSold
			}

			basePrice := int64(rng.Intn(90)+10) * 10000
			currentPrice := basePrice
			if status != domain.AuctionScheduled {
				currentPrice = basePrice + int64(rng.Intn(20))*5000
			}

			startAt := now.Add(-day)
			endAt := now.Add(3 * day)
			switch status {
			case domain.AuctionScheduled:
				startAt = now.Add(day)
				endAt = now.Add(5 * day)
			case domain.AuctionEnded, domain.AuctionSold:
				startAt = now.Add(-5 * day)
				endAt = now.Add(-day)
			}

			item := domain.AuctionItem{
				AuctionItemID: id,
				Title:         title,
				Description:   fmt.Sprintf("%s. Category %s, condition grade A. Shipping or local pickup available.", title, cat),
				Category:      cat,
				Status:        status,
				StartPrice:    basePrice,
				CurrentPrice:  currentPrice,
				SellerID:      catalogSellerID(id),
				SellerName:    fmt.Sprintf("seller%02d", catalogSellerID(id)-100),
				StartAt:       startAt,
				EndAt:         endAt,
				ImageURLs: []string{
					fmt.Sprintf("https://picsum.photos/seed/%d/400/300", id),
					fmt.Sprintf("https://picsum.photos/seed/%d/400/300", id+1000),
				},
				CreatedAt: now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
				UpdatedAt: now.Add(-day),
			}

			// Roughly two of three items support instant purchase.
			if i%3 != 2 {
				buyNow := basePrice * 2
				item.BuyNowPrice = &buyNow
			}

			items = append(items, item)
		}
	}
	return items
}

func catalogSellerID(itemID int64) int64 {
	return 101 + (itemID-1)%catalogSellerCount
}
