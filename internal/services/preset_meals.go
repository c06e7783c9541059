package services

import "github.com/yishak-cs/calboost/internal/models"

// Preset meal categories
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

var presetMeals = []models.PresetMeal{
	{ID: "breakfast-1", Name: "Torradas com Manteiga e Café", Category: MealBreakfast, Description: "2 torradas integrais com manteiga e café com leite", Calories: 285, Protein: 8, Carbs: 35, Fats: 12, Fiber: 4, Portion: "2 torradas + café", FoodItems: []string{"Pão integral", "Manteiga", "Café", "Leite"}},
	{ID: "breakfast-2", Name: "Iogurte com Granola e Fruta", Category: MealBreakfast, Description: "Iogurte natural com granola e banana", Calories: 320, Protein: 12, Carbs: 48, Fats: 9, Fiber: 5, Portion: "1 tigela", FoodItems: []string{"Iogurte natural", "Granola", "Banana"}},
	{ID: "breakfast-3", Name: "Ovos Mexidos com Pão", Category: MealBreakfast, Description: "2 ovos mexidos com 2 fatias de pão integral", Calories: 340, Protein: 18, Carbs: 28, Fats: 16, Fiber: 4, Portion: "2 ovos + 2 fatias", FoodItems: []string{"Ovos", "Pão integral", "Azeite"}},
	{ID: "breakfast-4", Name: "Aveia com Leite e Frutos Secos", Category: MealBreakfast, Description: "Papas de aveia com leite, mel e amêndoas", Calories: 380, Protein: 14, Carbs: 52, Fats: 13, Fiber: 7, Portion: "1 tigela", FoodItems: []string{"Aveia", "Leite", "Mel", "Amêndoas"}},

	{ID: "lunch-1", Name: "Frango Grelhado com Arroz e Salada", Category: MealLunch, Description: "150g de peito de frango grelhado, arroz branco e salada mista", Calories: 485, Protein: 42, Carbs: 58, Fats: 8, Fiber: 4, Portion: "1 prato", FoodItems: []string{"Frango grelhado", "Arroz branco", "Alface", "Tomate", "Cenoura"}},
	{ID: "lunch-2", Name: "Salmão Grelhado com Batata Doce", Category: MealLunch, Description: "150g de salmão grelhado com batata doce assada e brócolos", Calories: 520, Protein: 38, Carbs: 45, Fats: 18, Fiber: 7, Portion: "1 prato", FoodItems: []string{"Salmão grelhado", "Batata doce", "Brócolos"}},
	{ID: "lunch-3", Name: "Massa com Atum e Tomate", Category: MealLunch, Description: "Massa integral com atum, molho de tomate e vegetais", Calories: 465, Protein: 28, Carbs: 62, Fats: 12, Fiber: 8, Portion: "1 prato", FoodItems: []string{"Massa integral", "Atum", "Tomate", "Cebola", "Azeite"}},
	{ID: "lunch-4", Name: "Bacalhau com Grão e Espinafres", Category: MealLunch, Description: "Bacalhau cozido com grão-de-bico e espinafres salteados", Calories: 445, Protein: 36, Carbs: 42, Fats: 14, Fiber: 9, Portion: "1 prato", FoodItems: []string{"Bacalhau", "Grão-de-bico", "Espinafres", "Azeite"}},
	{ID: "lunch-5", Name: "Bife de Vaca com Arroz Integral", Category: MealLunch, Description: "150g de bife de vaca grelhado com arroz integral e feijão verde", Calories: 510, Protein: 40, Carbs: 48, Fats: 16, Fiber: 6, Portion: "1 prato", FoodItems: []string{"Bife de vaca", "Arroz integral", "Feijão verde"}},

	{ID: "dinner-1", Name: "Sopa de Legumes com Pão", Category: MealDinner, Description: "Sopa de legumes caseira com 2 fatias de pão integral", Calories: 280, Protein: 10, Carbs: 48, Fats: 6, Fiber: 8, Portion: "1 tigela + 2 fatias", FoodItems: []string{"Cenoura", "Batata", "Couve", "Feijão verde", "Pão integral"}},
	{ID: "dinner-2", Name: "Omelete com Salada", Category: MealDinner, Description: "Omelete de 3 ovos com queijo e salada mista", Calories: 380, Protein: 26, Carbs: 12, Fats: 26, Fiber: 3, Portion: "1 omelete + salada", FoodItems: []string{"Ovos", "Queijo", "Alface", "Tomate", "Pepino"}},
	{ID: "dinner-3", Name: "Frango Estufado com Arroz", Category: MealDinner, Description: "Frango estufado com cenoura, arroz branco e salada", Calories: 465, Protein: 38, Carbs: 52, Fats: 10, Fiber: 5, Portion: "1 prato", FoodItems: []string{"Frango estufado", "Cenoura", "Arroz branco", "Alface"}},
	{ID: "dinner-4", Name: "Peixe Cozido com Batata", Category: MealDinner, Description: "Pescada cozida com batata e legumes", Calories: 395, Protein: 32, Carbs: 44, Fats: 8, Fiber: 6, Portion: "1 prato", FoodItems: []string{"Pescada", "Batata", "Cenoura", "Brócolos"}},

	{ID: "snack-1", Name: "Fruta com Iogurte", Category: MealSnack, Description: "Maçã ou banana com iogurte natural", Calories: 180, Protein: 6, Carbs: 32, Fats: 3, Fiber: 4, Portion: "1 fruta + iogurte", FoodItems: []string{"Maçã", "Iogurte natural"}},
	{ID: "snack-2", Name: "Sanduíche de Queijo e Fiambre", Category: MealSnack, Description: "Sanduíche de pão integral com queijo e fiambre de peru", Calories: 285, Protein: 16, Carbs: 32, Fats: 10, Fiber: 4, Portion: "1 sanduíche", FoodItems: []string{"Pão integral", "Queijo", "Fiambre de peru"}},
	{ID: "snack-3", Name: "Mix de Frutos Secos", Category: MealSnack, Description: "Amêndoas, nozes e passas (30g)", Calories: 165, Protein: 5, Carbs: 14, Fats: 11, Fiber: 3, Portion: "1 mão cheia", FoodItems: []string{"Amêndoas", "Nozes", "Passas"}},
	{ID: "snack-4", Name: "Torrada com Queijo Fresco", Category: MealSnack, Description: "2 torradas integrais com queijo fresco e tomate", Calories: 195, Protein: 12, Carbs: 26, Fats: 5, Fiber: 4, Portion: "2 torradas", FoodItems: []string{"Pão integral", "Queijo fresco", "Tomate"}},
	{ID: "snack-5", Name: "Batido de Proteína", Category: MealSnack, Description: "Batido com leite, banana e proteína whey", Calories: 245, Protein: 22, Carbs: 28, Fats: 5, Fiber: 2, Portion: "1 copo", FoodItems: []string{"Leite", "Banana", "Proteína whey"}},
}
