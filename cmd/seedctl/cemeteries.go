package main

import "github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"

// cemeterySeed is the catalogue of cemeteries served by the company,
// keyed by the identifiers used in the existing customer records.
var cemeterySeed = []db_models.Cemetery{
	{ID: "2Hpa61NA1WfAhCgZ9", Name: "Cmentarz par. św. Wawrzyńca w Gliniance"},
	{ID: "xLvryQ5faizJh7GCA", Name: "Cmentarz parafialny w Wiązownie"},
	{ID: "z6RXiyH19gnZpo12A", Name: "Cmentarz w Dębe Wielkie"},
	{ID: "8SLgkRbVCGu1eAc3A", Name: "Cmentarz w Zakręcie"},
	{ID: "dnYJJViWzcH8tNSy9", Name: "Cmentarz Parafialny św. Anny w Długiej Kościelnej"},
	{ID: "mjbGi9em5JH4crJr8", Name: "Cmentarz Mariawicki w Halinowie"},
	{ID: "WtebX5CkHSC3YgKQ6", Name: "Cmentarz parafii Najświętszej Maryi Panny Matki Kościoła w Sulejówku w Warszawie-Wesołej"},
	{ID: "WXD6BJXkFgk31Rni8", Name: "Cmentarz Rzymskokatolicki w Starej Miłośnie"},
	{ID: "po8AUdNzvZRNsy2P6", Name: "Cmentarz Miejski, Kościelna 52, 05-303 Mińsk Mazowiecki"},
	{ID: "VERvXJHtnt8HNNgp8", Name: "Cmentarz jeńców Armii Czerwonej Otwock"},
	{ID: "7sd77M2w8sk9orAu5", Name: "Cmentarz parafialny Stara Wieś, Okoły"},
	{ID: "G47vtyRFqVpodP2q8", Name: "Cmentarz Otwocka, 05-430 Dąbrówka"},
	{ID: "8e8B7NAJgKkBtzfMA", Name: "Cmentarz Parafialny Michała, Andriollego 84, 05-400 Otwock"},
	{ID: "Dyiv2xi2HmgY3dKA9", Name: "Cmentarz Księdza Władysława Żaboklickiego, 05-480 Karczew"},
	{ID: "6d5GzLnFvy7292tL9", Name: "Cmentarz Wawerska 46, 05-420 Józefów"},
	{ID: "DEdr4q2crpfpFsVg7", Name: "Cmentarz Parafialny, Powsin, Ul. Przyczółkowska"},
	{ID: "y2va8AL4PTNR9z95A", Name: "Cmentarz Parafialny, Konstancin Jeziorna"},
	{ID: "XK44c7XnBTMaJKJE7", Name: "Cmentarz w Skolimowie"},
	{ID: "727ZVgjUdApd4WG69", Name: "Cmentarz parafialny, Piaseczno, ul. Tadeusza Kościuszki 44"},
	{ID: "tbF8wAnxQTEm1YtS7", Name: "Cmentarz Komunalny w Piasecznie, Julianowska 27"},
	{ID: "3BwdvSTvoyNKgQF77", Name: "Cmentarz Przy Parafii Zesłania Ducha Świętego, Stara Iwiczna"},
	{ID: "riokdbtMdbHfdUTu9", Name: "Cmentarz w Pyrach, Farbiarska 30"},
	{ID: "Qv7JY8CdVmm4KT887", Name: "Cmentarz w Grabowie, Poloneza"},
	{ID: "WjHk6V2WzasmriuU7", Name: "Cmentarz na Służewie przy ul. Wałbrzyskiej, Warszawa"},
	{ID: "umSSYYjDZDdJFXEWA", Name: "Cmentarz Wilanowski, Warszawa"},
	{ID: "wwhz1LqrJHjRKo5t7", Name: "Katolicki Cmentarz Parafialny, Warszawa"},
	{ID: "pL2Re3FKNBdhR4426", Name: "Cmentarz Czerniakowski, Warszawa"},
	{ID: "ijjzgkhzXgE1YaSU6", Name: "Cmentarz Parafialny w Raszynie, Warszawa"},
	{ID: "9nihrT6RMPY4ZrMw9", Name: "Cmentarz Parafialny Parafii Świętej Teresy, od Dzieciątka Jezus, Warszawa"},
	{ID: "tHxBymtNxGXAYkncA", Name: "Cmentarz Powstańców Warszawy, Warszawa"},
	{ID: "c4LB8ZNboUzhmELW6", Name: "Cmentarz na Solipsach, Warszawa"},
	{ID: "KKuP8ba9XCtcQYoA7", Name: "Cmentarz parafialny, Michałowice"},
	{ID: "iCUZiFJw8sguzEwt7", Name: "Cmentarz Parafii Matki Bożej Częstochowskiej, Piastów"},
	{ID: "a2XEQXMECtCr7FZH8", Name: "Cmentarz Powązkowski, Powązki, Powązkach"},
	{ID: "NDmvh7FKZ3GDkX5bA", Name: "Cmentarz Muzułmański (Tatarski)"},
	{ID: "PnZHgPmZ8k1mnZ3V8", Name: "Cmentarz Wojskowy Powązkowska 43/45, Warszawa"},
	{ID: "HoRtU3xGf6hrHhfKA", Name: "Cmentarz Wawrzyszewski, Wólczyńska 64, 01-908 Warszawa"},
	{ID: "SzuBfcM3QcdDktR18", Name: "Cmentarz Komunalny Północny brama południowa"},
	{ID: "fKFUGwtb2eagQfK49", Name: "Cmentarz komunalny północny Brama Północna"},
	{ID: "vuLNNLaWFTdyjNyp6", Name: "Cmentarz Komunalny Północny brama zachodnia"},
	{ID: "XgW4gVZrt8Pv8wnW8", Name: "Cmentarz Laski, 05-080 Izabelin"},
	{ID: "gKnZuoRkRXjtAR856", Name: "Cmentarz Izabelin"},
	{ID: "kqXKeNsQNnXJpwVu8", Name: "Cmentarz, Umiastowska 48, 05-850 Umiastów"},
	{ID: "9czEWZgCvwBHjAF76", Name: "Cmentarz, Parkowa 20, 05-850 Ożarów Mazowiecki"},
	{ID: "EcFaFKn4yPyYhAHZ8", Name: "Cmentarz komunalny, Kiełpin, Łomianki"},
	{ID: "XH56GyJmpjCzXNkr6", Name: "Cmentarz Tarchomiński, Mehoffera, 03-131 Warszawa"},
	{ID: "kJdpq2gUGNCWHU7o6", Name: "Cmentarz ewangelicki osadników niemieckich, Kamykowa 1, 01-999 Warszawa"},
	{ID: "K39UaSSngGnoP3Vg6", Name: "Cmentarz Bródnowski (Bródzieński), św. Wincentego 83, 03-530 Warszawa"},
	{ID: "on96wPzQcSpqkfBB6", Name: "Cmentarz Żydowski na Bródnie, św. Wincentego 15, 03-505 Warszawa"},
	{ID: "FVm2TzBCcTGL8ncLA", Name: "Cmentarz przy Parafii Miłosierdzia Bożego w Ząbkach"},
	{ID: "p7dok1G6Ubbm1z5j9", Name: "Cmentarz Parafialny w Rembertowie, 498, Grzybowa 4, Warszawa"},
	{ID: "E3UMtjujkdXFJEGQ6", Name: "Cmentarz parafialny, aleja Józefa Piłsudskiego, Zielonka"},
	{ID: "g8YsZZahFdbNsW5C7", Name: "Cmentarz Marysin, Korkowa 152, Warszawa"},
	{ID: "ePqnNc1cWGjcG1Js9", Name: "Cmentarz Poległych w Bitwie Warszawskiej 1920 r. Ossów, 05-220 Zielonka"},
	{ID: "rUYRWBbNLNiaR6om7", Name: "Cmentarz Zabraniec, ul. Wspólna"},
	{ID: "bjx53EWFyF8h7ihBA", Name: "Cmentarz w Okuniewie"},
	{ID: "tDf17a97jUdAPw8t9", Name: "Cmentarz, Pustelnik 05-304 Stanisławów"},
	{ID: "EvYaWbeBASt37dRZ8", Name: "Cmentarz Stanisławów, 05-304"},
	{ID: "NvpJmcpj9VnZLrhT9", Name: "Municipal Cemetery, Mińsk Mazowiecki"},
	{ID: "93aCAVMqyL3kD4jr5", Name: "Cmentarz parafialny w Żukowie, 05-300 Żukowo"},
	{ID: "AGWq8EgZoAFn6g4a6", Name: "Cmentarz Parafialny w Zamienia"},
	{ID: "pucGBWDfHTrZxc2Y9", Name: "Cmentarz Komunalny, 05-332 Siennica"},
	{ID: "GCVkBN9bzpJmCAMj9", Name: "Cmentarz, 05-303 Ignaców"},
	{ID: "X82wyHi46aP6FDYK6", Name: "Cmentarz rodzin niemieckich, 05-303 Tyborów w Tyborowie,"},
	{ID: "dSwca8uqLqenjWFq7", Name: "Cmentarz Parafii Rzymskokatolickiej św. Anny w Jakubowie, Jakubów 22"},
	{ID: "rSFUyE7RTDeTmuXf8", Name: "Cmentarz Rzymskokatolicki, Henryka Dobrzyckiego, 05-319 Cegłów"},
	{ID: "8oY27nueCSVt1hRQ7", Name: "Cmentarz Mariawicki, 05-319 Cegłów"},
	{ID: "9pEtjJnQAdQRBKGY6", Name: "Cmentarz Kuflew, 05-320 Kuflew"},
	{ID: "t5e9trzUreqdRayFA", Name: "Cmentarz parafialny w Kiczkach, 05-319 Kiczki Pierwsze"},
	{ID: "LEUd6tEzN6PTYjCJ6", Name: "Cmentarz w Zabieżkach, 05-430"},
	{ID: "Jxe1ZD7oNFz3bR556", Name: "Cmentarz Parafialny, 05-340 Kołbiel"},
	{ID: "LLVJyJGBv7qQn4ur9", Name: "Cmentarz w Gocławiu, 3 Maja 70, 08-440 Gocław"},
	{ID: "N6HTUCWqBP7vh6D96", Name: "Cmentarz Komunalny Pruszków - Gąsin, Południowa 5"},
	{ID: "TcuhiFKGqcs5Wu3v7", Name: "Cmentarz, 2 Sierpnia 24, 05-800 Pruszków"},
	{ID: "wMAmBE59CKfs66kD9", Name: "Cmentarz parafialny, Powstańców Warszawy 17, 05-840 Brwinów"},
	{ID: "P3EWCPccSWuFtNzW9", Name: "Cmentarz, Ogrodowa, 05-807 Podkowa Leśna"},
	{ID: "cvy7igLyoUpCkCHi8", Name: "Cmentarz Komorów, Turystyczna 17, 05-806 Komorów"},
	{ID: "ARVDWbBytHgz14YKA", Name: "Cmentarz, Turystyczna, 05-830 Nadarzyn"},
	{ID: "hB6uzdFv7pdVuQjA8", Name: "Cmentarz w Kostowcu, 05-830"},
	{ID: "RF941edoXSJ8vJVv5", Name: "Cmentarz Parafialny w Młochowie, 05-831 Młochów"},
	{ID: "ujjh74wzerigezdY9", Name: "Cmentarz parafialny w Mrokowie, Rejonowa, 05-552"},
	{ID: "VrqFVwKSqwkMrrPG6", Name: "Cmentarz Parafialny w Tarczynie, 1 Maja, 05-555 Tarczyn"},
	{ID: "tKoytWRSu5aX9oeAA", Name: "Cmentarz Parafialny w Złotokłosie, Piaseczyńska 59, 05-504 Złotokłos"},
	{ID: "PaGNsqe3vWiPxxmo8", Name: "Cmentarz Parafialny w Prażmowie, Piotra Czołchańskiego, 05-505"},
	{ID: "CW8QMkkX5Mki95rq5", Name: "Cmentarz Parafialny w Pieczyskach, 05-505 Chynów"},
	{ID: "PCJFGWYtVv2DHVUu8", Name: "Cmentarz, Akacjowa 4, 05-650 Drwalew"},
	{ID: "kDLwMV4W4qdAAHoFA", Name: "Cmentarz Parafialny w Sobikowie, 05-530 Góra Kalwaria"},
	{ID: "Pnp6btpTQaLsq5hWA", Name: "Cmentarz, 05-650 Rososz"},
	{ID: "K6WrPYoB78y7uM638", Name: "Cmentarz Rzymskokatolicki, Kalwaryjska, 05-530 Góra Kalwaria"},
	{ID: "ARNzUTCekhWWuTX99", Name: "Cmentarz, Bielińskiego, 05-530 Czersk"},
	{ID: "PwnwyGrRZjo4C7pU9", Name: "Cmentarz Mariawicki w Pogorzeli, 08-445 Pogorzel"},
	{ID: "uTTKvkrk9aY45oeu7", Name: "Cmentarz, Krakowska, 08-445 Osieck"},
	{ID: "96nDGSaEb7rosN419", Name: "Cmentarz, Słoneczna, 08-440 Pilawa"},
	{ID: "XEuFnXrzTJPGegs97", Name: "Cmentarz, Osiecka, 08-400 Miętne"},
	{ID: "amHaN1sGgnpoSivR9", Name: "Cmentarz parafialny w Marianowie, 08-410 Marianów"},
	{ID: "5rWgd3ZdeQitYWD88", Name: "Cmentarz parafialny w Górkach, 08-400 Garwolin"},
	{ID: "YjTDMBHiqsHYVX2Z9", Name: "Cmentarz Parafialny, 08-450 Łaskarzew"},
	{ID: "pdofcswxfG5182bz9", Name: "Cmentarz Parafialny, 08-404 Górzno"},
	{ID: "hALEyPX8fE6i5GH79", Name: "Cmentarz Parafialny, Cmentarna 3, 08-400 Garwolin"},
	{ID: "m7q2biAUvRd5g7fC6", Name: "Cmentarz, Garwolińska 2, 08-420 Miastków Kościelny"},
	{ID: "UK4yJF7zm2yNEKKNA", Name: "Cmentarz parafialny Żelechów, Długa, 08-430 Żelechów"},
	{ID: "kckwH9NFsFQvhAgN7", Name: "Cmentarz Parafialny, Krępska 27, 08-460 Sobolew"},
	{ID: "NXw3Qd69nFQ62mw37", Name: "Cmentarz Wolski, Warszawa"},
	{ID: "G348+VQ", Name: "Cmentarz w Serocku"},
}
