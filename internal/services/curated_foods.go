package services

import "github.com/yishak-cs/calboost/internal/models"

// curatedFoods is the built-in table of common foods, values per 100g
var curatedFoods = []models.FoodRecord{
	{ID: "chicken-breast", Name: "Peito de Frango", Category: "protein", CaloriesPer100: 165, ProteinPer100: 31, CarbsPer100: 0, FatsPer100: 3.6, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "salmon", Name: "Salmão", Category: "protein", CaloriesPer100: 208, ProteinPer100: 20, CarbsPer100: 0, FatsPer100: 13, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "beef", Name: "Bife de Vaca", Category: "protein", CaloriesPer100: 250, ProteinPer100: 26, CarbsPer100: 0, FatsPer100: 15, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "tuna", Name: "Atum", Category: "protein", CaloriesPer100: 132, ProteinPer100: 28, CarbsPer100: 0, FatsPer100: 1.3, FiberPer100: 0, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "cod", Name: "Bacalhau", Category: "protein", CaloriesPer100: 82, ProteinPer100: 18, CarbsPer100: 0, FatsPer100: 0.7, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "eggs", Name: "Ovos", Category: "protein", CaloriesPer100: 155, ProteinPer100: 13, CarbsPer100: 1.1, FatsPer100: 11, FiberPer100: 0, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "turkey", Name: "Peru", Category: "protein", CaloriesPer100: 135, ProteinPer100: 30, CarbsPer100: 0, FatsPer100: 1, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "pork", Name: "Porco", Category: "protein", CaloriesPer100: 143, ProteinPer100: 21, CarbsPer100: 0, FatsPer100: 6, FiberPer100: 0, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "shrimp", Name: "Camarão", Category: "protein", CaloriesPer100: 85, ProteinPer100: 20, CarbsPer100: 0.9, FatsPer100: 0.5, FiberPer100: 0, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "white-rice", Name: "Arroz Branco", Category: "grains", CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatsPer100: 0.3, FiberPer100: 0.4, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "brown-rice", Name: "Arroz Integral", Category: "grains", CaloriesPer100: 112, ProteinPer100: 2.6, CarbsPer100: 24, FatsPer100: 0.9, FiberPer100: 1.8, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "pasta", Name: "Massa", Category: "grains", CaloriesPer100: 131, ProteinPer100: 5, CarbsPer100: 25, FatsPer100: 1.1, FiberPer100: 1.8, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "potato", Name: "Batata", Category: "carbs", CaloriesPer100: 77, ProteinPer100: 2, CarbsPer100: 17, FatsPer100: 0.1, FiberPer100: 2.1, DefaultServingGrams: 200, Source: models.SourceLocal},
	{ID: "sweet-potato", Name: "Batata Doce", Category: "carbs", CaloriesPer100: 86, ProteinPer100: 1.6, CarbsPer100: 20, FatsPer100: 0.1, FiberPer100: 3, DefaultServingGrams: 200, Source: models.SourceLocal},
	{ID: "bread", Name: "Pão Integral", Category: "grains", CaloriesPer100: 247, ProteinPer100: 13, CarbsPer100: 41, FatsPer100: 3.4, FiberPer100: 7, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "oats", Name: "Aveia", Category: "grains", CaloriesPer100: 389, ProteinPer100: 17, CarbsPer100: 66, FatsPer100: 7, FiberPer100: 11, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "quinoa", Name: "Quinoa", Category: "grains", CaloriesPer100: 368, ProteinPer100: 14, CarbsPer100: 64, FatsPer100: 6, FiberPer100: 7, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "couscous", Name: "Cuscuz", Category: "grains", CaloriesPer100: 112, ProteinPer100: 3.8, CarbsPer100: 23, FatsPer100: 0.2, FiberPer100: 1.4, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "broccoli", Name: "Brócolos", Category: "vegetables", CaloriesPer100: 34, ProteinPer100: 2.8, CarbsPer100: 7, FatsPer100: 0.4, FiberPer100: 2.6, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "lettuce", Name: "Alface", Category: "vegetables", CaloriesPer100: 15, ProteinPer100: 1.4, CarbsPer100: 2.9, FatsPer100: 0.2, FiberPer100: 1.3, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "tomato", Name: "Tomate", Category: "vegetables", CaloriesPer100: 18, ProteinPer100: 0.9, CarbsPer100: 3.9, FatsPer100: 0.2, FiberPer100: 1.2, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "carrot", Name: "Cenoura", Category: "vegetables", CaloriesPer100: 41, ProteinPer100: 0.9, CarbsPer100: 10, FatsPer100: 0.2, FiberPer100: 2.8, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "spinach", Name: "Espinafres", Category: "vegetables", CaloriesPer100: 23, ProteinPer100: 2.9, CarbsPer100: 3.6, FatsPer100: 0.4, FiberPer100: 2.2, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "green-beans", Name: "Feijão Verde", Category: "vegetables", CaloriesPer100: 31, ProteinPer100: 1.8, CarbsPer100: 7, FatsPer100: 0.2, FiberPer100: 2.7, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "cucumber", Name: "Pepino", Category: "vegetables", CaloriesPer100: 15, ProteinPer100: 0.7, CarbsPer100: 3.6, FatsPer100: 0.1, FiberPer100: 0.5, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "bell-pepper", Name: "Pimento", Category: "vegetables", CaloriesPer100: 31, ProteinPer100: 1, CarbsPer100: 7, FatsPer100: 0.3, FiberPer100: 2.5, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "zucchini", Name: "Abobrinha", Category: "vegetables", CaloriesPer100: 17, ProteinPer100: 1.2, CarbsPer100: 3.1, FatsPer100: 0.3, FiberPer100: 1, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "onion", Name: "Cebola", Category: "vegetables", CaloriesPer100: 40, ProteinPer100: 1.1, CarbsPer100: 9.3, FatsPer100: 0.1, FiberPer100: 1.7, DefaultServingGrams: 50, Source: models.SourceLocal},
	{ID: "garlic", Name: "Alho", Category: "vegetables", CaloriesPer100: 149, ProteinPer100: 6.4, CarbsPer100: 33, FatsPer100: 0.5, FiberPer100: 2.1, DefaultServingGrams: 5, Source: models.SourceLocal},
	{ID: "banana", Name: "Banana", Category: "fruits", CaloriesPer100: 89, ProteinPer100: 1.1, CarbsPer100: 23, FatsPer100: 0.3, FiberPer100: 2.6, DefaultServingGrams: 120, Source: models.SourceLocal},
	{ID: "apple", Name: "Maçã", Category: "fruits", CaloriesPer100: 52, ProteinPer100: 0.3, CarbsPer100: 14, FatsPer100: 0.2, FiberPer100: 2.4, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "orange", Name: "Laranja", Category: "fruits", CaloriesPer100: 47, ProteinPer100: 0.9, CarbsPer100: 12, FatsPer100: 0.1, FiberPer100: 2.4, DefaultServingGrams: 130, Source: models.SourceLocal},
	{ID: "strawberry", Name: "Morangos", Category: "fruits", CaloriesPer100: 32, ProteinPer100: 0.7, CarbsPer100: 8, FatsPer100: 0.3, FiberPer100: 2, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "grapes", Name: "Uvas", Category: "fruits", CaloriesPer100: 69, ProteinPer100: 0.7, CarbsPer100: 18, FatsPer100: 0.2, FiberPer100: 0.9, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "kiwi", Name: "Kiwi", Category: "fruits", CaloriesPer100: 61, ProteinPer100: 1.1, CarbsPer100: 15, FatsPer100: 0.5, FiberPer100: 3.1, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "pineapple", Name: "Ananás", Category: "fruits", CaloriesPer100: 50, ProteinPer100: 0.5, CarbsPer100: 13, FatsPer100: 0.1, FiberPer100: 1.4, DefaultServingGrams: 150, Source: models.SourceLocal},
	{ID: "watermelon", Name: "Melancia", Category: "fruits", CaloriesPer100: 30, ProteinPer100: 0.6, CarbsPer100: 8, FatsPer100: 0.2, FiberPer100: 0.4, DefaultServingGrams: 200, Source: models.SourceLocal},
	{ID: "yogurt", Name: "Iogurte Natural", Category: "dairy", CaloriesPer100: 59, ProteinPer100: 10, CarbsPer100: 3.6, FatsPer100: 0.4, FiberPer100: 0, DefaultServingGrams: 125, Source: models.SourceLocal},
	{ID: "milk", Name: "Leite", Category: "dairy", CaloriesPer100: 42, ProteinPer100: 3.4, CarbsPer100: 5, FatsPer100: 1, FiberPer100: 0, DefaultServingGrams: 200, Source: models.SourceLocal},
	{ID: "cheese", Name: "Queijo", Category: "dairy", CaloriesPer100: 402, ProteinPer100: 25, CarbsPer100: 1.3, FatsPer100: 33, FiberPer100: 0, DefaultServingGrams: 30, Source: models.SourceLocal},
	{ID: "cottage-cheese", Name: "Queijo Fresco", Category: "dairy", CaloriesPer100: 98, ProteinPer100: 11, CarbsPer100: 3.4, FatsPer100: 4.3, FiberPer100: 0, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "butter", Name: "Manteiga", Category: "dairy", CaloriesPer100: 717, ProteinPer100: 0.9, CarbsPer100: 0.1, FatsPer100: 81, FiberPer100: 0, DefaultServingGrams: 10, Source: models.SourceLocal},
	{ID: "olive-oil", Name: "Azeite", Category: "fats", CaloriesPer100: 884, ProteinPer100: 0, CarbsPer100: 0, FatsPer100: 100, FiberPer100: 0, DefaultServingGrams: 10, Source: models.SourceLocal},
	{ID: "almonds", Name: "Amêndoas", Category: "fats", CaloriesPer100: 579, ProteinPer100: 21, CarbsPer100: 22, FatsPer100: 50, FiberPer100: 12, DefaultServingGrams: 30, Source: models.SourceLocal},
	{ID: "walnuts", Name: "Nozes", Category: "fats", CaloriesPer100: 654, ProteinPer100: 15, CarbsPer100: 14, FatsPer100: 65, FiberPer100: 7, DefaultServingGrams: 30, Source: models.SourceLocal},
	{ID: "avocado", Name: "Abacate", Category: "fats", CaloriesPer100: 160, ProteinPer100: 2, CarbsPer100: 9, FatsPer100: 15, FiberPer100: 7, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "peanut-butter", Name: "Manteiga de Amendoim", Category: "fats", CaloriesPer100: 588, ProteinPer100: 25, CarbsPer100: 20, FatsPer100: 50, FiberPer100: 6, DefaultServingGrams: 20, Source: models.SourceLocal},
	{ID: "chickpeas", Name: "Grão-de-Bico", Category: "carbs", CaloriesPer100: 164, ProteinPer100: 9, CarbsPer100: 27, FatsPer100: 2.6, FiberPer100: 7.6, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "lentils", Name: "Lentilhas", Category: "carbs", CaloriesPer100: 116, ProteinPer100: 9, CarbsPer100: 20, FatsPer100: 0.4, FiberPer100: 7.9, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "beans", Name: "Feijão", Category: "carbs", CaloriesPer100: 127, ProteinPer100: 9, CarbsPer100: 23, FatsPer100: 0.5, FiberPer100: 6.4, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "peas", Name: "Ervilhas", Category: "vegetables", CaloriesPer100: 81, ProteinPer100: 5.4, CarbsPer100: 14, FatsPer100: 0.4, FiberPer100: 5.7, DefaultServingGrams: 100, Source: models.SourceLocal},
	{ID: "honey", Name: "Mel", Category: "other", CaloriesPer100: 304, ProteinPer100: 0.3, CarbsPer100: 82, FatsPer100: 0, FiberPer100: 0.2, DefaultServingGrams: 15, Source: models.SourceLocal},
	{ID: "dark-chocolate", Name: "Chocolate Preto", Category: "other", CaloriesPer100: 546, ProteinPer100: 7.8, CarbsPer100: 45, FatsPer100: 31, FiberPer100: 10.9, DefaultServingGrams: 20, Source: models.SourceLocal},
	{ID: "coffee", Name: "Café", Category: "other", CaloriesPer100: 1, ProteinPer100: 0.1, CarbsPer100: 0, FatsPer100: 0, FiberPer100: 0, DefaultServingGrams: 200, Source: models.SourceLocal},
}
