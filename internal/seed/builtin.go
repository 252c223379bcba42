package seed

import (
	"context"

	"github.com/bradykim7/cookbook/internal/models"
)

// BuiltinSource serves the bundled recipe catalog
type BuiltinSource struct{}

// Name returns the name of the source
func (BuiltinSource) Name() string {
	return "builtin"
}

// Load returns the bundled recipes
func (BuiltinSource) Load(ctx context.Context) ([]models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Builtin(), nil
}

func ingredient(name string, quantity float64, unit models.Unit) models.Component {
	return models.NewComponent(name, quantity, unit)
}

func step(description string) models.Direction {
	return models.NewDirection(description, false)
}

func optional(description string) models.Direction {
	return models.NewDirection(description, true)
}

func info(name, description, author string, category models.Category) models.MainInformation {
	return models.MainInformation{
		Name:        name,
		Description: description,
		Author:      author,
		Category:    category,
	}
}

const (
	oz   = models.UnitOunces
	g    = models.UnitGrams
	cups = models.UnitCups
	tbs  = models.UnitTablespoons
	tsp  = models.UnitTeaspoons
	none = models.UnitNone
)

// Builtin returns the bundled recipes. Every call builds new recipes with
// new IDs.
func Builtin() []models.Recipe {
	return []models.Recipe{
		models.NewRecipe(
			info("Dad's Mashed Potatoes", "Buttery salty mashed potatoes!", "Josh", models.CategoryDinner),
			[]models.Component{
				ingredient("Potatoes", 454, g),
				ingredient("Butter", 1, tbs),
				ingredient("Milk", 0.5, cups),
				ingredient("Salt", 2, tsp),
			},
			[]models.Direction{
				step("Put peeled potatoes in water and bring to boil ~15 min (once you can cut them easily)"),
				step("In the meantime, soften the butter by heating in a microwave for 30 seconds"),
				step("Drain the now soft potatoes"),
				step("Mix vigorously with milk, salt, and butter"),
			},
		),
		models.NewRecipe(
			info("Beet and Apple Salad", "Light and refreshing summer salad made of beets, apples and fresh mint", "Deb Szajngarten", models.CategoryLunch),
			[]models.Component{
				ingredient("Large beet", 3, none),
				ingredient("Large apple", 2, none),
				ingredient("Lemon zest", 0.5, tbs),
				ingredient("Lemon juice", 1.5, tbs),
				ingredient("Olive Oil", 1, tsp),
				ingredient("Salt", 1, tsp),
				ingredient("Pepper", 1, tsp),
			},
			[]models.Direction{
				step("Add beets to food safe plastic storage bags with apples, a teaspoon of course salt and a teaspoon of ground black pepper"),
				step("Vacuum seal the bag of beets and submerge into 185F water until tender; if no vacuum seal, weigh them down so they submerge"),
				step("Once cooked, the skins will come off quite easily (gloves are preferred)"),
				step("Wait until cooled completely, then cut beets into a medium dice"),
				step("Peel and medium dice the apples"),
				step("Chiffonade the mint"),
				step("Combine all ingredients with lemon juice and olive oil and serve"),
			},
		),
		models.NewRecipe(
			info("Braised Beef Brisket", "Slow cooked brisket in a savory braise that makes an amazing gravy.", "Deb Szajngarten", models.CategoryDinner),
			[]models.Component{
				ingredient("Brisket", 1815, g),
				ingredient("Large Red Onion", 1, none),
				ingredient("Minced garlic clove", 6, none),
				ingredient("Large Carrot", 1, none),
				ingredient("Parsnip", 1, none),
				ingredient("Celery Stalk", 3, none),
				ingredient("Caul, Duck, or Chicken Fat", 3, tbs),
				ingredient("Bay Leaf", 1, none),
				ingredient("Apple Cider Vinegar", 0.3, cups),
				ingredient("Red Wine", 1, cups),
				ingredient("Small Can of Tomato Paste", 1, none),
				ingredient("Spoonful of Honey", 1, none),
				ingredient("Chicken Stock", 30, oz),
			},
			[]models.Direction{
				step("In a small bowl, combine the honey, tomato paste and wine, and mix into paste"),
				step("In an oval dutch oven, melt the fat over a medium to high heat."),
				step("Sear the brisket on both side then remove the heat"),
				step("Add a bit more fat or vegetable oil and sear the vegetables until the onions become translucent"),
				step("Add the wine mixture, return the beef to the pot, add the chicken stock until it come 1/2 way up the beef"),
				step("Close the lid and bake at 250 until fork tender (4-6 hrs)"),
			},
		),
		models.NewRecipe(
			info("Best Brownies Ever", "Five simple ingredients make these brownies easy to make and delicious to consume!", "Pam Broda", models.CategoryDessert),
			[]models.Component{
				ingredient("Condensed Milk", 14, oz),
				ingredient("Crushed Graham Crackers", 2.5, cups),
				ingredient("Semi-Sweet Chocolate Chips", 12, oz),
				ingredient("Vanilla Extract", 1, tsp),
				ingredient("Milk", 2, tbs),
			},
			[]models.Direction{
				step("Preheat oven to 350 degrees F"),
				step("Crush graham cracker in large mixing bowl with clean hands, not in food processor! (Make sure pieces are chunky)"),
				step("Semi-melt the chocolate chips, keep some intact"),
				step("Stir in vanilla and milk"),
				step("Grease an 8x8 in. pan with butter and pour in brownie mix"),
				step("Bake for 23-25min - DO NOT OVERBAKE"),
			},
		),
		models.NewRecipe(
			info("Omelet and Greens", "Quick, crafty omelet with greens!", "Taylor Murray", models.CategoryBreakfast),
			[]models.Component{
				ingredient("Olive Oil", 3, tbs),
				ingredient("Onion, finely chopped", 1, none),
				ingredient("Large Egg", 8, none),
				ingredient("Kosher Salt", 1, none),
				ingredient("Unsalted Butter", 2, tbs),
				ingredient("Parmesan, finely grated", 1, oz),
				ingredient("Fresh Lemon Juice", 2, tbs),
				ingredient("Baby Spinach", 3, oz),
			},
			[]models.Direction{
				step("Heat 1 tbsp olive oil in large non stick skillet on medium heat"),
				step("Add onions until tender, about 6 minutes then transfer to a small bowl"),
				step("In a different bowl, whisk eggs, 1 tbs water, and 0.5 tsp salt"),
				step("Return skillet to medium heat and butter"),
				step("Add eggs, constantly stirring until eggs partially set"),
				step("Turn heat to low and cover"),
				step("Continue cooking till eggs are just set, 4-5 min"),
				optional("Top with parmesan and onions, fold in half"),
				step("In a medium bowl, whisk lemon juice, 2 tbs olive oil, toss with spinach and serve with omelet"),
			},
		),
		models.NewRecipe(
			info("Vegetarian Chili", "Warm, comforting, and filling vegetarian chili", "Makeinze Gore", models.CategoryLunch),
			[]models.Component{
				ingredient("Chopped Onion", 1, none),
				ingredient("Chopped Red Bell Pepper", 1, none),
				ingredient("Peeled and finely chopped carrot", 1, none),
				ingredient("Minced Garlic Cloves", 3, none),
				ingredient("Finely Chopped Jalapeno", 1, none),
				ingredient("Tomato Paste", 2, tbs),
				ingredient("Can of Pinto Beans, Drained and Rinsed", 1, none),
				ingredient("Can of Black Beans, Drained and Rinsed", 1, none),
				ingredient("Can of Kidney Beans, Drained and Rinsed", 1, none),
				ingredient("Can of Fire Roasted Tomatoes", 1, none),
				ingredient("Vegetable Broth", 3, cups),
				ingredient("Chili Powder", 2, tbs),
				ingredient("Cumin", 1, tbs),
				ingredient("Oregano", 2, tsp),
			},
			[]models.Direction{
				step("In a large pot over medium heat, heat olive oil then add onions, bell peppers and carrots"),
				step("Saute until soft - about 5 min"),
				step("Add garlic and jalapeno and cool until fragrant - about 1 min"),
				step("Add tomato paste and stir to coat vegetables"),
				step("Add tomatoes, beans, broth, and seasonings"),
				step("Season with salt and pepper to desire"),
				step("Bring to a boil then reduce heat and let simmer for 30min"),
				optional("Serve with cheese, sour cream, and cilantro"),
			},
		),
		models.NewRecipe(
			info("Classic Shrimp Scampi", "Simple, delicate shrimp bedded in a delicious set of pasta that will melt your tastebuds!", "Sarah Taller", models.CategoryDinner),
			[]models.Component{
				ingredient("Linguini", 12, oz),
				ingredient("Large shrimp, peeled", 20, oz),
				ingredient("Extra-virgin olive oil", 0.33, cups),
				ingredient("Minced garlic clove", 5, none),
				ingredient("Red pepper flakes", 0.5, tsp),
				ingredient("White Wine", 0.3, cups),
				ingredient("Lemon", 3, none),
				ingredient("Unsalted butter, cut into pieces", 4, tbs),
				ingredient("Finely Chopped Fresh Parsley", 0.25, cups),
			},
			[]models.Direction{
				step("Bring large pot of salt water to a boil"),
				step("Add the linguine and cook as label directs"),
				step("Reserve 1 cup cooking water, then drain"),
				step("Season shrimp with salt"),
				step("Heat olive oil in large skillet over medium-heat"),
				step("Add garlic and red pepper flakes and cook until garlic is golden, 30sec-1min"),
				step("Add shrimp and cook, stirring occasionally, until pink and just cooked through: 1-2min per side, then remove shrimp"),
				step("Add the wine and juice of a lemon to the skillet and simmer slightly reduced, 2 min"),
				step("Return shrimp and any juices to the skillet alongside linguini, butter, and a 0.5 cup of cooking water"),
				step("Continue to cook, tossing, until the butter is melted and the shrimp is hot, about 2 min"),
				step("Season with salt, stir in parsley"),
				optional("Serve with lemon wedges!"),
			},
		),
		models.NewRecipe(
			info("Chocolate Billionaires", "Chocolate and caramel candies that are to die for!", "Jack B", models.CategoryDessert),
			[]models.Component{
				ingredient("Caramel Candies", 14, oz),
				ingredient("Water", 3, tbs),
				ingredient("Chopped Pecans", 1.25, cups),
				ingredient("Rice Krispies", 1, cups),
				ingredient("Milk Chocolate Chips", 3, cups),
				ingredient("Shortening", 1.25, tsp),
			},
			[]models.Direction{
				step("Line 2 baking sheets with waxed paper"),
				step("Grease paper and set aside"),
				step("In a large heavy saucepan, combine caramels and water"),
				step("Cook and stir over low heat until smooth"),
				step("Stir in pecans and rice krispies until coated"),
				step("Put mixture onto prepared pans"),
				step("Refrigerate for 10 mins or until firm"),
				step("Melt chocolate chips and shortening"),
				step("Stir until smooth"),
				step("Dip candy into chocolate, coating all sides"),
				step("Allow excess to drip off"),
				step("Place on prepared pans and refrigerate until set"),
			},
		),
		models.NewRecipe(
			info("Mac & Cheese", "Macaroni & Cheese", "Travis B", models.CategoryDinner),
			[]models.Component{
				ingredient("Elbow Macaroni", 12, oz),
				ingredient("Butter", 2, tbs),
				ingredient("Small chopped onion", 1, none),
				ingredient("Milk", 4, cups),
				ingredient("Flour", 0.3, cups),
				ingredient("Bay Leaf", 1, none),
				ingredient("Thyme", 0.5, tsp),
				ingredient("Pepper", 1, tsp),
				ingredient("Salt", 1, tsp),
				ingredient("Shredded Sharp Cheddar", 1, cups),
			},
			[]models.Direction{
				step("Heat oven to 375. Lightly coat 13 x 9 baking dish with vegetable cooking spray."),
				step("Start to cook pasta."),
				step("Meanwhile, melt 1 tablespoon butter in a saucepan over medium heat. Add onion, and cook until softened, about 3 min."),
				step("Whisk together 1/2 cup milk and flour until smooth."),
				step("Add milk texture to onion, then whisk in remaining 3.5 cups milk, bay leaf, thyme, salt, and pepper."),
				step("Cook over medium-low heat 10-12min, stirring occasionally, until slight thickened."),
				step("With slotted spoon, remove bay leaf. Stir in cheese until melted."),
				step("Drain pasta and stir into cheese mixture."),
				step("Pour into prepared dish and bake for 35 minutes, or until cheese is bubbly."),
			},
		),
		models.NewRecipe(
			info("Veggie Soup", "Classic Vegetable Soup", "Travis B", models.CategoryDinner),
			[]models.Component{
				ingredient("Diced Yellow Onion", 1, none),
				ingredient("Minced Garlic Clove", 4, none),
				ingredient("Diced Celery Stalk", 1, none),
				ingredient("Shredded Carrots", 1, cups),
				ingredient("Broccoli florets", 1, cups),
				ingredient("Cubed Zucchini", 1, none),
				ingredient("Spinach", 3, cups),
				ingredient("Peeled and Cubed Potato", 1, none),
				ingredient("Can of Kidney Beans", 1, none),
				ingredient("Box of Vegetable Stock", 1, none),
				ingredient("Can of Diced Tomatoes", 1, none),
			},
			[]models.Direction{
				step("Cook onion and garlic on high heat until onion is translucent, about 5 min"),
				step("Add celery, carrots, parsley, and cook for 5-7min"),
				step("Add diced tomatoes, vegetable stock, and potato. Bring to boil and let simmer for 45min"),
				step("Add broccoli, zucchini, and kidney beans. Bring back to boil and then let simmer for 15 more min"),
				optional("Serve with spinach and parmesan cheese"),
			},
		),
		models.NewRecipe(
			info("White Clam Sauce", "A simple recipe for quick comfort food", "Henry Minden", models.CategoryDinner),
			[]models.Component{
				ingredient("Canned Clams", 40, oz),
				ingredient("Garlic Clove", 8, none),
				ingredient("Onion", 1, none),
				ingredient("White Wine", 2, tbs),
				ingredient("Butter", 4, tbs),
			},
			[]models.Direction{
				step("Chop garlic and onions"),
				step("Saute garlic and onions in olive oil"),
				step("Add clams and 1/2 the juice from the cans"),
				step("Add butter, wine, and salt pepper to taste"),
				step("Simmer for 15min until sauce reduces by half"),
				step("Serve over favorite pasta"),
			},
		),
		models.NewRecipe(
			info("Granola Bowl", "A dense and delicious breakfast", "Ben", models.CategoryBreakfast),
			[]models.Component{
				ingredient("Granola", 0.5, cups),
				ingredient("Banana", 1, none),
				ingredient("Peanut Butter", 2, tbs),
			},
			[]models.Direction{
				step("Slice the banana"),
				step("Combine all ingredients in a bowl"),
				optional("Add chocolate chips"),
			},
		),
		models.NewRecipe(
			info("Banana Bread", "Easy to put together, and a family favorite!", "Lisbeth", models.CategoryDessert),
			[]models.Component{
				ingredient("Ripe banana", 3, none),
				ingredient("Sugar", 1, cups),
				ingredient("Egg", 1, none),
				ingredient("Flour", 1.5, cups),
				ingredient("Melted Butter", 0.25, cups),
				ingredient("Baking Soda", 1, tsp),
				ingredient("Salt", 1, tsp),
				ingredient("Chocolate Chips", 1, cups),
			},
			[]models.Direction{
				step("Preheat oven to 325"),
				step("Mash banana with fork"),
				step("Stir in sugar, egg, flour, melted butter, soda, and salt"),
				step("Stir in chocolate chips"),
				step("Pour in buttered loaf and bake 1 hour or until knife inserted comes out clean"),
			},
		),
	}
}
